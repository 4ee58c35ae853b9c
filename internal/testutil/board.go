package testutil

import (
	"testing"

	"github.com/lgbarn/chess101-go/internal/chess"
)

// MustSquare parses an algebraic square name, failing the test on error.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad test square %q: %v", name, err)
	}
	return sq
}

// BoardWith returns an otherwise empty board holding the given pieces,
// keyed by algebraic square name.
func BoardWith(t *testing.T, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for name, p := range pieces {
		if err := b.Set(MustSquare(t, name), p); err != nil {
			t.Fatalf("placing %v on %s: %v", p, name, err)
		}
	}
	return b
}

// BoardFromRows builds a board from eight rows of display letters, row 0
// (rank 8) first. Spaces are ignored and '.' marks an empty square.
func BoardFromRows(t *testing.T, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("BoardFromRows: got %d rows, want %d", len(rows), chess.BoardSize)
	}
	b := chess.NewBoard()
	for row, line := range rows {
		col := 0
		for i := 0; i < len(line); i++ {
			c := line[i]
			switch c {
			case ' ':
				continue
			case '.':
				col++
				continue
			}
			p, ok := chess.PieceFromLetter(c)
			if !ok {
				t.Fatalf("BoardFromRows: bad letter %q in row %d", c, row)
			}
			if err := b.Set(chess.Sq(row, col), p); err != nil {
				t.Fatalf("BoardFromRows: row %d too long", row)
			}
			col++
		}
		if col != chess.BoardSize {
			t.Fatalf("BoardFromRows: row %d has %d squares", row, col)
		}
	}
	return b
}
