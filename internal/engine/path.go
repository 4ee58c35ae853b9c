package engine

import "github.com/lgbarn/chess101-go/internal/chess"

// isPathClear checks that every square strictly between from and to is
// empty. The walk steps one square at a time along the sign of each axis,
// so callers must only pass straight or diagonal lines. The destination
// square itself is never inspected.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := chess.Sq(from.Row+rowDir, from.Col+colDir)

	for sq != to {
		if !board.IsEmpty(sq) {
			return false
		}
		sq = chess.Sq(sq.Row+rowDir, sq.Col+colDir)
	}

	return true
}
