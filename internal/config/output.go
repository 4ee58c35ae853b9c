package config

// DisplayConfig holds settings for what the interactive loop prints.
type DisplayConfig struct {
	// ShowWelcome prints the welcome line at start.
	ShowWelcome bool

	// ShowRules prints the piece movement summary after the welcome line.
	ShowRules bool

	// ShowBoard prints the board before each turn.
	ShowBoard bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		ShowWelcome: true,
		ShowRules:   true,
		ShowBoard:   true,
	}
}
