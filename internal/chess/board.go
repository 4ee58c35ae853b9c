package chess

import "github.com/lgbarn/chess101-go/internal/errors"

// Board holds the contents of all 64 squares, indexed [row][col].
// Board is a value type: assigning it copies every square, so a copy is
// an independent snapshot.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// backRank is the piece order on both back ranks, files a to h.
var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position:
// Black on rows 0 and 1, White on rows 6 and 7.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Occupant returns the piece at sq, or NoPiece if the square is empty.
func (b *Board) Occupant(sq Square) (Piece, error) {
	if !sq.InBounds() {
		return NoPiece, outOfBounds("occupant", sq)
	}
	return b.Squares[sq.Row][sq.Col], nil
}

// IsEmpty reports whether sq is on the board and holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.InBounds() && b.Squares[sq.Row][sq.Col].IsEmpty()
}

// Set places a piece (or NoPiece) at sq.
func (b *Board) Set(sq Square, piece Piece) error {
	if !sq.InBounds() {
		return outOfBounds("set", sq)
	}
	b.Squares[sq.Row][sq.Col] = piece
	return nil
}

// MovePiece copies the occupant of from onto to and empties from.
// It performs no legality check: moving from an empty square or onto a
// friendly piece is carried out as asked.
func (b *Board) MovePiece(from, to Square) error {
	if !from.InBounds() {
		return outOfBounds("move from", from)
	}
	if !to.InBounds() {
		return outOfBounds("move to", to)
	}
	piece := b.Squares[from.Row][from.Col]
	b.Squares[from.Row][from.Col] = NoPiece
	b.Squares[to.Row][to.Col] = piece
	return nil
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for row := range b.Squares {
		for col := range b.Squares[row] {
			if !b.Squares[row][col].IsEmpty() {
				n++
			}
		}
	}
	return n
}

func outOfBounds(op string, sq Square) error {
	return &errors.SquareError{Err: errors.ErrOutOfBounds, Op: op, Row: sq.Row, Col: sq.Col}
}
