package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess101-go/internal/errors"
)

func TestColour(t *testing.T) {
	tests := []struct {
		colour    Colour
		name      string
		opposite  Colour
		direction int
		homeRow   int
	}{
		{White, "White", Black, -1, 6},
		{Black, "Black", White, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.colour.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
			if got := tt.colour.Opposite(); got != tt.opposite {
				t.Errorf("Opposite() = %v; want %v", got, tt.opposite)
			}
			if got := tt.colour.PawnDirection(); got != tt.direction {
				t.Errorf("PawnDirection() = %d; want %d", got, tt.direction)
			}
			if got := tt.colour.PawnHomeRow(); got != tt.homeRow {
				t.Errorf("PawnHomeRow() = %d; want %d", got, tt.homeRow)
			}
		})
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(Pawn), 'P'},
		{W(Knight), 'N'},
		{W(King), 'K'},
		{B(Pawn), 'p'},
		{B(Queen), 'q'},
		{B(Rook), 'r'},
		{NoPiece, '.'},
		{Piece{Type: PieceType(42)}, '?'},
	}

	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := tt.piece.Letter(); got != tt.want {
				t.Errorf("Letter() = %c; want %c", got, tt.want)
			}
		})
	}
}

func TestPieceFromLetter(t *testing.T) {
	for _, c := range []byte("PNBRQKpnbrqk") {
		p, ok := PieceFromLetter(c)
		if !ok {
			t.Errorf("PieceFromLetter(%c) not ok", c)
			continue
		}
		if got := p.Letter(); got != c {
			t.Errorf("PieceFromLetter(%c).Letter() = %c", c, got)
		}
	}

	for _, c := range []byte(".xZ1 ") {
		if _, ok := PieceFromLetter(c); ok {
			t.Errorf("PieceFromLetter(%q) ok; want rejected", c)
		}
	}
}

func TestPieceString(t *testing.T) {
	if got := B(Knight).String(); got != "Black Knight" {
		t.Errorf("String() = %q; want %q", got, "Black Knight")
	}
	if got := NoPiece.String(); got != "Empty" {
		t.Errorf("String() = %q; want %q", got, "Empty")
	}
	if got := PieceType(-1).String(); got != "Unknown" {
		t.Errorf("String() = %q; want %q", got, "Unknown")
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		text string
		want Square
	}{
		{"a8", Sq(0, 0)},
		{"h8", Sq(0, 7)},
		{"a1", Sq(7, 0)},
		{"h1", Sq(7, 7)},
		{"e2", Sq(6, 4)},
		{"e4", Sq(4, 4)},
		{"E7", Sq(1, 4)},
		{"d1", Sq(7, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseSquare(tt.text)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, text := range []string{"", "e", "e22", "i1", "a0", "a9", "11", "ee", "`1"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseSquare(text)
			if !errors.Is(err, chesserrors.ErrInvalidSquare) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", text, err)
			}
			var parseErr *chesserrors.ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("ParseSquare(%q) error is not a *ParseError", text)
			}
		})
	}
}

func TestSquareString(t *testing.T) {
	for _, name := range []string{"a1", "a8", "h1", "h8", "e2", "d5"} {
		sq, err := ParseSquare(name)
		if err != nil {
			t.Fatal(err)
		}
		if got := sq.String(); got != name {
			t.Errorf("ParseSquare(%q).String() = %q", name, got)
		}
	}

	if got := Sq(8, -1).String(); got != "(8,-1)" {
		t.Errorf("off-board String() = %q; want %q", got, "(8,-1)")
	}
}

func TestMoveString(t *testing.T) {
	m := Move{From: Sq(6, 4), To: Sq(4, 4)}
	if got := m.String(); got != "e2 to e4" {
		t.Errorf("String() = %q; want %q", got, "e2 to e4")
	}
}
