package config

import "time"

// EditorConfig holds editing and input settings.
type EditorConfig struct {
	// LineNumbers shows the line-number gutter.
	LineNumbers bool

	// EscapeTimeout is the longest wait for the rest of an escape sequence
	// after ESC. Zero only accepts bytes that are already pending.
	EscapeTimeout time.Duration
}

// KeysConfig holds key specs for the editor commands.
type KeysConfig struct {
	Save []string
	Quit []string
}

// ThemeConfig holds optional "#RRGGBB" colors. Empty keeps the default.
type ThemeConfig struct {
	Gutter   string
	StatusFg string
	StatusBg string
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string

	// File receives log output. Empty disables logging.
	File string
}
