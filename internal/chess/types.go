// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns the row delta of a single pawn step:
// +1 for Black, -1 for White. Row 0 is Black's back rank.
func (c Colour) PawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

// PawnHomeRow returns the row on which the colour's pawns start.
func (c Colour) PawnHomeRow() int {
	if c == White {
		return 6
	}
	return 1
}

// PieceType represents a chess piece type.
type PieceType int

const (
	Empty PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Piece is the occupant of a square: a piece type and its colour.
// The zero value is NoPiece.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece is the occupant of an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(p PieceType) Piece {
	return Piece{Type: p, Colour: White}
}

// B creates a black piece.
func B(p PieceType) Piece {
	return Piece{Type: p, Colour: Black}
}

// IsEmpty reports whether the occupant is an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// Letter returns the display letter: uppercase for White, lowercase
// for Black and '.' for an empty square.
func (p Piece) Letter() byte {
	l := p.Type.Letter()
	if p.Colour == White || l < 'A' || l > 'Z' {
		return l
	}
	return l + ('a' - 'A')
}

// PieceFromLetter converts a display or FEN letter to a piece.
// Case selects the colour. The second result is false for
// anything that is not one of PNBRQK in either case.
func PieceFromLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var p PieceType
	switch c {
	case 'P':
		p = Pawn
	case 'N':
		p = Knight
	case 'B':
		p = Bishop
	case 'R':
		p = Rook
	case 'Q':
		p = Queen
	case 'K':
		p = King
	default:
		return NoPiece, false
	}
	return Piece{Type: p, Colour: colour}, true
}

// Constants for board dimensions and notation.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
	LastRank = RankBase + BoardSize - 1
	LastCol  = ColBase + BoardSize - 1
)
