// Package config provides configuration for chess101.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess101-go/internal/engine"
	"github.com/lgbarn/chess101-go/internal/errors"
)

// Verbosity levels for LogFile output.
const (
	Silent  = 0 // nothing
	Normal  = 1 // session start and end
	Verbose = 2 // running commentary, one line per turn
)

// Config holds all program configuration.
type Config struct {
	// Verbosity controls how much is written to LogFile.
	Verbosity int

	// StartFEN is the starting position, empty for the standard layout.
	StartFEN string

	// Display settings for the interactive loop.
	Display *DisplayConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		Display:    NewDisplayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer for board and prompt output.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Verbose {
		return fmt.Errorf("verbosity %d outside %d-%d: %w", c.Verbosity, Silent, Verbose, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output stream: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a log line if the configured verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
