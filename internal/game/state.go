// Package game tracks a two-player game: the board, whose turn it is, and
// the processing of one typed move at a time.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chess101-go/internal/chess"
	"github.com/lgbarn/chess101-go/internal/engine"
)

// State is one game session. It is a plain value: PlayTurn returns a new
// State rather than changing the one it was given.
type State struct {
	ID     string
	Board  chess.Board
	ToMove chess.Colour
}

// NewState starts a game from the standard position with White to move.
func NewState() State {
	return State{
		ID:     uuid.NewString(),
		Board:  *chess.NewInitialBoard(),
		ToMove: chess.White,
	}
}

// NewStateFromFEN starts a game from a FEN placement and side to move.
func NewStateFromFEN(fen string) (State, error) {
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return State{}, err
	}
	return State{
		ID:     uuid.NewString(),
		Board:  *board,
		ToMove: toMove,
	}, nil
}

// FEN returns the position in FEN placement and side-to-move form.
func (s State) FEN() string {
	return engine.BoardToFEN(&s.Board, s.ToMove)
}
