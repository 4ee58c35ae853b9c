package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/chess101-go/internal/config"
	"github.com/lgbarn/chess101-go/internal/game"
	"github.com/lgbarn/chess101-go/internal/output"
)

// newSession creates the starting state from the configuration.
func newSession(cfg *config.Config) (game.State, error) {
	if cfg.StartFEN == "" {
		return game.NewState(), nil
	}
	return game.NewStateFromFEN(cfg.StartFEN)
}

// playGame runs the read-move loop until in is exhausted. Rejected moves
// are reported and re-prompted for the same side; there is no limit on
// retries. It returns the final state.
func playGame(cfg *config.Config, st game.State, in io.Reader) (game.State, error) {
	gw := output.NewGameWriter(cfg)
	scanner := bufio.NewScanner(in)

	if err := gw.WriteIntro(); err != nil {
		return st, err
	}
	cfg.Logf(config.Normal, "game %s: started from %s", st.ID, st.FEN())

	for {
		if err := gw.WriteTurn(&st.Board, st.ToMove); err != nil {
			return st, err
		}

		next, ok, err := readTurn(cfg, gw, scanner, st)
		if err != nil || !ok {
			return st, err
		}
		st = next
	}
}

// readTurn prompts until a move is accepted. ok is false when input ends.
func readTurn(cfg *config.Config, gw *output.GameWriter, scanner *bufio.Scanner, st game.State) (game.State, bool, error) {
	for {
		if err := gw.WritePrompt(); err != nil {
			return st, false, err
		}
		if !scanner.Scan() {
			fmt.Fprintln(cfg.OutputFile)
			cfg.Logf(config.Normal, "game %s: input closed at %s", st.ID, st.FEN())
			return st, false, scanner.Err()
		}

		line := scanner.Text()
		next, err := game.PlayTurn(st, line)
		if err != nil {
			cfg.Logf(config.Verbose, "rejected: %v", err)
			if werr := gw.WriteRejection(err); werr != nil {
				return st, false, werr
			}
			continue
		}

		cfg.Logf(config.Verbose, "game %s: %s played %s, position %s", st.ID, st.ToMove, line, next.FEN())
		return next, true, nil
	}
}
