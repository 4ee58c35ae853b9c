// Package errors provides sentinel errors and error types for chess101.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a square outside the 8x8 grid.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrIllegalMove indicates a move the piece rules do not allow.
	ErrIllegalMove = errors.New("illegal move")

	// ErrEmptySquare indicates a move from a square with no piece on it.
	ErrEmptySquare = errors.New("no piece on starting square")

	// ErrOpponentPiece indicates an attempt to move the other side's piece.
	ErrOpponentPiece = errors.New("piece belongs to opponent")

	// ErrInvalidNotation indicates move text not of the form "e2 to e4".
	ErrInvalidNotation = errors.New("invalid move notation")

	// ErrInvalidSquare indicates a malformed square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SquareError reports an operation on a square that is not on the board.
type SquareError struct {
	Err error // The underlying error
	Op  string
	Row int
	Col int
}

// Error returns a formatted error message including the coordinates.
func (e *SquareError) Error() string {
	msg := fmt.Sprintf("square (%d,%d)", e.Row, e.Col)
	if e.Op != "" {
		msg = e.Op + " " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// MoveError wraps a rejected move with the context needed to report it:
// the side that tried it, the raw input and the squares involved.
type MoveError struct {
	Err     error  // The underlying error
	Session string // Game session ID (if known)
	Colour  string // Side to move when the move was attempted
	Input   string // The raw move text
	From    string // Origin square in algebraic notation (if parsed)
	To      string // Destination square in algebraic notation (if parsed)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Session != "" {
		parts = append(parts, "game "+e.Session)
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.From != "" && e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	} else if e.Input != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Input))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to read user or setup text.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
