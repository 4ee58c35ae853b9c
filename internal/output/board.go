// Package output renders the board and the prompts of the interactive game.
package output

import (
	"bufio"
	"io"

	"github.com/lgbarn/chess101-go/internal/chess"
)

const fileLabels = "  a b c d e f g h"

// WriteBoard prints the board with file letters above and below and the
// rank number at the start of each row, row 0 (rank 8) first.
func WriteBoard(w io.Writer, board *chess.Board) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(fileLabels)
	bw.WriteByte('\n')
	for row := 0; row < chess.BoardSize; row++ {
		bw.WriteByte(byte('0' + chess.BoardSize - row))
		for col := 0; col < chess.BoardSize; col++ {
			bw.WriteByte(' ')
			bw.WriteByte(board.Squares[row][col].Letter())
		}
		bw.WriteByte('\n')
	}
	bw.WriteString(fileLabels)
	bw.WriteByte('\n')

	return bw.Flush()
}
