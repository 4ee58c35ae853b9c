package chess

import (
	"fmt"

	"github.com/lgbarn/chess101-go/internal/errors"
)

// Square addresses one cell of the board. Row 0 is Black's back rank
// (rank 8) and row 7 is White's (rank 1); Col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether the square lies on the 8x8 grid.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// String returns the square in algebraic notation, e.g. "e2".
// Off-board squares are printed as coordinates.
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte(ColBase + s.Col), byte(RankBase + BoardSize - 1 - s.Row)})
}

// ParseSquare converts algebraic notation ("e2") to a Square.
// The file letter may be upper or lower case.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    text,
			Expected: "file and rank",
		}
	}

	file, rank := text[0], text[1]
	if file >= 'A' && file <= 'Z' {
		file += 'a' - 'A'
	}
	if file < ColBase || file > LastCol {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    text,
			Expected: "file a-h",
			Got:      string(text[0]),
		}
	}
	if rank < RankBase || rank > LastRank {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    text,
			Expected: "rank 1-8",
			Got:      string(rank),
		}
	}

	return Square{
		Row: BoardSize - int(rank-RankBase+1),
		Col: int(file - ColBase),
	}, nil
}

// Move is a proposed move as an origin and destination pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move in the "e2 to e4" form players type.
func (m Move) String() string {
	return m.From.String() + " to " + m.To.String()
}
