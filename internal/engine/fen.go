package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess101-go/internal/chess"
	"github.com/lgbarn/chess101-go/internal/errors"
)

// InitialFEN is the placement and side to move of the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

// NewBoardFromFEN creates a board from a FEN string. Only the piece
// placement and side-to-move fields are read; castling, en passant and
// clock fields are accepted and ignored. White moves when the side field
// is absent.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// The first rank listed is row 0.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in placement, want %d: %w", len(ranks), chess.BoardSize, errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if err := board.Set(chess.Sq(row, col), piece); err != nil {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN returns the placement and side-to-move fields for board.
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	if toMove == chess.White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	return sb.String()
}
