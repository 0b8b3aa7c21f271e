package renderer

import (
	"fmt"

	"github.com/dshills/med/internal/renderer/core"
)

// Theme holds the styles used for the gutter and status bar.
type Theme struct {
	Gutter    core.Style
	StatusBar core.Style
}

// DefaultTheme returns the built-in theme: dim gray line numbers and a
// black-on-white status bar.
func DefaultTheme() Theme {
	return Theme{
		Gutter:    core.StyleGutter,
		StatusBar: core.StyleStatusBar,
	}
}

// NewTheme builds a theme from optional "#RRGGBB" colors.
// Empty values keep the default style for that element.
func NewTheme(gutterFg, statusFg, statusBg string) (Theme, error) {
	theme := DefaultTheme()

	g, err := core.StyleFromHex(gutterFg, "", theme.Gutter)
	if err != nil {
		return Theme{}, fmt.Errorf("gutter: %w", err)
	}
	s, err := core.StyleFromHex(statusFg, statusBg, theme.StatusBar)
	if err != nil {
		return Theme{}, fmt.Errorf("status bar: %w", err)
	}

	theme.Gutter = g
	theme.StatusBar = s
	return theme, nil
}
