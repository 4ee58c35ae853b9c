package engine

import (
	"testing"

	"github.com/lgbarn/chess101-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial": InitialFEN,
	"Open":    "4k3/8/8/3q4/8/8/8/R3K2R w",
	"Crowded": "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

// BenchmarkIsValidMove tries every origin/destination pair on each board.
func BenchmarkIsValidMove(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, _, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for from := 0; from < 64; from++ {
					fromSq := chess.Sq(from/8, from%8)
					piece := board.Squares[fromSq.Row][fromSq.Col]
					for to := 0; to < 64; to++ {
						IsValidMove(piece, fromSq, chess.Sq(to/8, to%8), board)
					}
				}
			}
		})
	}
}
