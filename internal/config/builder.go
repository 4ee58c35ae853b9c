package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// ShowRules controls whether the rules summary is printed at start.
func (b *ConfigBuilder) ShowRules(show bool) *ConfigBuilder {
	b.cfg.Display.ShowRules = show
	return b
}

// ShowBoard controls whether the board is printed before each turn.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Display.ShowBoard = show
	return b
}

// Quiet turns off the welcome banner, rules and board.
func (b *ConfigBuilder) Quiet() *ConfigBuilder {
	b.cfg.Display.ShowWelcome = false
	b.cfg.Display.ShowRules = false
	b.cfg.Display.ShowBoard = false
	return b
}
