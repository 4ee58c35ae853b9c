package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess101-go/internal/chess"
	"github.com/lgbarn/chess101-go/internal/config"
)

// GameWriter writes everything the player sees to the configured output.
type GameWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewGameWriter creates a writer for cfg.OutputFile.
func NewGameWriter(cfg *config.Config) *GameWriter {
	return &GameWriter{
		w:   cfg.OutputFile,
		cfg: cfg,
	}
}

// WriteIntro prints the welcome line and rules, as configured.
func (gw *GameWriter) WriteIntro() error {
	if gw.cfg.Display.ShowWelcome {
		if _, err := fmt.Fprintln(gw.w, Welcome); err != nil {
			return err
		}
	}
	if !gw.cfg.Display.ShowRules {
		return nil
	}
	if _, err := fmt.Fprintln(gw.w, RulesHeader); err != nil {
		return err
	}
	for _, line := range Rules {
		if _, err := fmt.Fprintln(gw.w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(gw.w)
	return err
}

// WriteTurn prints the board (if enabled) and whose turn it is.
func (gw *GameWriter) WriteTurn(board *chess.Board, toMove chess.Colour) error {
	if gw.cfg.Display.ShowBoard {
		if err := WriteBoard(gw.w, board); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(gw.w, "%s's turn.\n", toMove)
	return err
}

// WritePrompt asks for a move without ending the line.
func (gw *GameWriter) WritePrompt() error {
	_, err := io.WriteString(gw.w, MovePrompt)
	return err
}

// WriteRejection tells the player why a move was refused.
func (gw *GameWriter) WriteRejection(err error) error {
	_, werr := fmt.Fprintln(gw.w, RetryMessage(err))
	return werr
}
