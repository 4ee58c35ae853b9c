// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess101-go/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file for board and prompts (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet      = flag.Bool("q", false, "Quiet mode: no banner, rules or board")
	verbosity  = flag.Int("v", config.Normal, "Log verbosity: 0 silent, 1 normal, 2 every move")

	// Display options
	noRules = flag.Bool("norules", false, "Don't print the rules at start")
	noBoard = flag.Bool("noboard", false, "Don't print the board before each turn")

	// Game setup
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the standard one")

	// Other
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.StartFEN = *startFEN

	applyDisplayFlags(cfg)
}

// applyDisplayFlags configures what the interactive loop prints.
func applyDisplayFlags(cfg *config.Config) {
	if *quiet {
		cfg.Display.ShowWelcome = false
		cfg.Display.ShowRules = false
		cfg.Display.ShowBoard = false
		return
	}
	cfg.Display.ShowRules = !*noRules
	cfg.Display.ShowBoard = !*noBoard
}
