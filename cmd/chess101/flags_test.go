package main

import (
	"testing"

	"github.com/lgbarn/chess101-go/internal/config"
)

// saveRestoreBool sets a bool flag and returns a func restoring it.
// Usage: defer saveRestoreBool(quiet, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Verbosity != config.Normal {
		t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.Normal)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q; want empty", cfg.StartFEN)
	}
	if !cfg.Display.ShowWelcome || !cfg.Display.ShowRules || !cfg.Display.ShowBoard {
		t.Errorf("Display = %+v; want everything shown", *cfg.Display)
	}
}

func TestApplyFlags_Values(t *testing.T) {
	defer saveRestoreInt(verbosity, config.Verbose)()
	defer saveRestoreString(startFEN, "8/8/8/8/8/8/8/8 w")()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Verbosity != config.Verbose {
		t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.Verbose)
	}
	if cfg.StartFEN != "8/8/8/8/8/8/8/8 w" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
}

func TestApplyDisplayFlags(t *testing.T) {
	t.Run("norules", func(t *testing.T) {
		defer saveRestoreBool(noRules, true)()
		cfg := config.NewConfig()
		applyDisplayFlags(cfg)
		if cfg.Display.ShowRules {
			t.Error("ShowRules = true; want false")
		}
		if !cfg.Display.ShowBoard || !cfg.Display.ShowWelcome {
			t.Error("-norules should not hide board or welcome")
		}
	})

	t.Run("noboard", func(t *testing.T) {
		defer saveRestoreBool(noBoard, true)()
		cfg := config.NewConfig()
		applyDisplayFlags(cfg)
		if cfg.Display.ShowBoard {
			t.Error("ShowBoard = true; want false")
		}
	})

	t.Run("quiet overrides everything", func(t *testing.T) {
		defer saveRestoreBool(quiet, true)()
		cfg := config.NewConfig()
		applyDisplayFlags(cfg)
		if cfg.Display.ShowWelcome || cfg.Display.ShowRules || cfg.Display.ShowBoard {
			t.Errorf("Display = %+v; want nothing shown", *cfg.Display)
		}
	})
}
