package output

import (
	"errors"

	chesserrors "github.com/lgbarn/chess101-go/internal/errors"
)

// Text shown by the interactive game.
const (
	Welcome     = "Welcome to Chess 101! Let's play."
	RulesHeader = "Rules for Chess Pieces:"
	MovePrompt  = "Enter your move (e.g., e2 to e4): "
)

// Rules is the movement summary printed after the welcome line.
var Rules = []string{
	"1. Pawns move forward one square, with the option to move two squares on their first move.",
	"2. Rooks move horizontally or vertically any number of squares.",
	"3. Knights move in an L-shape: two squares in one direction and then one square perpendicular.",
	"4. Bishops move diagonally any number of squares.",
	"5. The Queen moves horizontally, vertically, or diagonally any number of squares.",
	"6. The King moves one square in any direction.",
}

// retryMessages maps rejection reasons to what the player is told.
// The first match wins.
var retryMessages = []struct {
	err error
	msg string
}{
	{chesserrors.ErrInvalidNotation, "Invalid input. Please use the format 'e2 to e4'."},
	{chesserrors.ErrEmptySquare, "There's no piece at the starting position. Try again."},
	{chesserrors.ErrOpponentPiece, "You can't move the opponent's piece. Try again."},
	{chesserrors.ErrIllegalMove, "That's an invalid move. Please select another square or piece."},
}

// RetryMessage returns the line shown to the player when a move is
// rejected with err.
func RetryMessage(err error) string {
	for _, m := range retryMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return "An unexpected error occurred: " + err.Error() + ". Please try again."
}
