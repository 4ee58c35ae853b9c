package engine

import "github.com/lgbarn/chess101-go/internal/chess"

// canPawnMove checks a pawn push. Only straight moves along the file are
// accepted: one step onto an empty square, or two steps from the home row
// with both squares ahead empty. Pawns have no capture move here.
func canPawnMove(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	if to.Col != from.Col {
		return false
	}

	direction := colour.PawnDirection()
	rowDiff := to.Row - from.Row

	switch rowDiff {
	case direction:
		return board.IsEmpty(to)

	case 2 * direction:
		middle := chess.Sq(from.Row+direction, from.Col)
		return from.Row == colour.PawnHomeRow() &&
			board.IsEmpty(middle) &&
			board.IsEmpty(to)
	}

	return false
}
