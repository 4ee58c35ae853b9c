// Package engine provides chess move validation.
//
// The rules here check movement shape and path obstruction only. There is
// no check detection, castling, en passant or promotion, and pawns have no
// capture move. Rook, bishop, queen and king moves are not rejected when the
// destination holds a piece of the mover's own colour; the knight is the
// only piece that refuses a friendly-occupied destination.
package engine

import "github.com/lgbarn/chess101-go/internal/chess"

// IsValidMove reports whether piece may move from one square to another on
// board. The caller is expected to have checked that from holds piece.
// board is only read.
func IsValidMove(piece chess.Piece, from, to chess.Square, board *chess.Board) bool {
	if !to.InBounds() {
		return false
	}

	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col

	switch piece.Type {
	case chess.Pawn:
		return canPawnMove(board, piece.Colour, from, to)

	case chess.Rook:
		return isStraight(rowDiff, colDiff) && isPathClear(board, from, to)

	case chess.Bishop:
		return isDiagonal(rowDiff, colDiff) && isPathClear(board, from, to)

	case chess.Queen:
		return (isStraight(rowDiff, colDiff) || isDiagonal(rowDiff, colDiff)) &&
			isPathClear(board, from, to)

	case chess.Knight:
		return canKnightMove(board, piece.Colour, rowDiff, colDiff, to)

	case chess.King:
		return max(abs(rowDiff), abs(colDiff)) == 1
	}

	return false
}

// canKnightMove accepts the L shape onto an empty square or an enemy piece.
func canKnightMove(board *chess.Board, colour chess.Colour, rowDiff, colDiff int, to chess.Square) bool {
	r, c := abs(rowDiff), abs(colDiff)
	if !(r == 2 && c == 1) && !(r == 1 && c == 2) {
		return false
	}
	target, err := board.Occupant(to)
	if err != nil {
		return false
	}
	return target.IsEmpty() || target.Colour != colour
}

// isStraight is true along a rank or file. Exactly one axis may change,
// which rules out the zero-length move.
func isStraight(rowDiff, colDiff int) bool {
	return (rowDiff == 0) != (colDiff == 0)
}

// isDiagonal is true for a nonzero move with equal row and column distance.
func isDiagonal(rowDiff, colDiff int) bool {
	return rowDiff != 0 && abs(rowDiff) == abs(colDiff)
}
