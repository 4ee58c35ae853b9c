package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess101-go/internal/chess"
	"github.com/lgbarn/chess101-go/internal/errors"
)

// moveSeparator sits between the two squares of a typed move.
const moveSeparator = " to "

// ParseMove reads a move typed as "e2 to e4". Leading and trailing
// whitespace is ignored; the separator must be exactly " to ".
func ParseMove(text string) (chess.Move, error) {
	trimmed := strings.TrimSpace(text)

	from, to, ok := strings.Cut(trimmed, moveSeparator)
	if !ok {
		return chess.Move{}, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Input:    text,
			Expected: "'<square> to <square>'",
		}
	}

	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return chess.Move{}, notationError(text, err)
	}
	toSq, err := chess.ParseSquare(to)
	if err != nil {
		return chess.Move{}, notationError(text, err)
	}

	return chess.Move{From: fromSq, To: toSq}, nil
}

// notationError reports a bad square as bad move notation, keeping the
// square error reachable through errors.Is.
func notationError(text string, err error) error {
	return &errors.ParseError{
		Err:   fmt.Errorf("%w: %w", errors.ErrInvalidNotation, err),
		Input: text,
	}
}
