package game

import (
	"github.com/lgbarn/chess101-go/internal/chess"
	"github.com/lgbarn/chess101-go/internal/engine"
	"github.com/lgbarn/chess101-go/internal/errors"
)

// PlayTurn applies one typed move for the side to move.
//
// On success it returns the new state, with the piece moved and the turn
// passed to the other side. On rejection it returns st unchanged and a
// *errors.MoveError wrapping one of ErrInvalidNotation, ErrEmptySquare,
// ErrOpponentPiece or ErrIllegalMove.
func PlayTurn(st State, input string) (State, error) {
	move, err := ParseMove(input)
	if err != nil {
		return st, &errors.MoveError{
			Err:     err,
			Session: st.ID,
			Colour:  st.ToMove.String(),
			Input:   input,
		}
	}
	return apply(st, move, input)
}

// Apply plays an already parsed move with the same checks as PlayTurn.
// An origin off the board fails with ErrOutOfBounds; a destination off
// the board is an illegal move.
func Apply(st State, move chess.Move) (State, error) {
	return apply(st, move, "")
}

func apply(st State, move chess.Move, input string) (State, error) {
	reject := func(err error) (State, error) {
		return st, &errors.MoveError{
			Err:     err,
			Session: st.ID,
			Colour:  st.ToMove.String(),
			Input:   input,
			From:    move.From.String(),
			To:      move.To.String(),
		}
	}

	piece, err := st.Board.Occupant(move.From)
	if err != nil {
		return reject(err)
	}

	switch {
	case piece.IsEmpty():
		return reject(errors.ErrEmptySquare)
	case piece.Colour != st.ToMove:
		return reject(errors.ErrOpponentPiece)
	case !engine.IsValidMove(piece, move.From, move.To, &st.Board):
		return reject(errors.ErrIllegalMove)
	}

	next := st
	if err := next.Board.MovePiece(move.From, move.To); err != nil {
		return reject(err)
	}
	next.ToMove = st.ToMove.Opposite()

	return next, nil
}
