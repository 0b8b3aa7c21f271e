// Package gutter provides gutter rendering for the editor.
// The gutter is the area to the left of the text content that displays
// line numbers.
package gutter

import (
	"fmt"
	"strconv"

	"github.com/dshills/med/internal/renderer/core"
)

// Config holds gutter configuration.
type Config struct {
	// ShowLineNumbers enables line number display.
	ShowLineNumbers bool

	// MinLineNumberWidth is the minimum number of digit columns.
	MinLineNumberWidth int

	// Style is written before gutter text and reset after it.
	Style core.Style
}

// DefaultConfig returns the default gutter configuration.
func DefaultConfig() Config {
	return Config{
		ShowLineNumbers:    true,
		MinLineNumberWidth: 1,
		Style:              core.StyleGutter,
	}
}

// Gutter renders line numbers and filler markers.
type Gutter struct {
	config Config
}

// New creates a new gutter.
func New(config Config) *Gutter {
	if config.MinLineNumberWidth < 1 {
		config.MinLineNumberWidth = 1
	}
	return &Gutter{config: config}
}

// Config returns the gutter configuration.
func (g *Gutter) Config() Config {
	return g.config
}

// Digits returns the number of decimal digits in n (at least 1).
func Digits(n int) int {
	if n < 0 {
		n = -n
	}
	return len(strconv.Itoa(n))
}

// NumberWidth returns the width of the number column for totalLines.
func (g *Gutter) NumberWidth(totalLines int) int {
	if !g.config.ShowLineNumbers {
		return 0
	}
	return max(Digits(totalLines), g.config.MinLineNumberWidth)
}

// Width returns the total gutter width: the number column plus one
// separator column. A disabled gutter has width 0.
func (g *Gutter) Width(totalLines int) int {
	if !g.config.ShowLineNumbers {
		return 0
	}
	return g.NumberWidth(totalLines) + 1
}

// LineNumber returns the gutter text for the zero-based line.
// The number is right-aligned and followed by the separator.
func (g *Gutter) LineNumber(line, totalLines int) string {
	if !g.config.ShowLineNumbers {
		return ""
	}
	return fmt.Sprintf("%s%*d%s ", g.config.Style, g.NumberWidth(totalLines), line+1, core.Reset)
}

// Filler returns the end-of-buffer marker, right-aligned to the gutter width.
func (g *Gutter) Filler(totalLines int) string {
	width := g.Width(totalLines)
	if width == 0 {
		width = 1
	}
	return fmt.Sprintf("%s%*s%s", g.config.Style, width, "~", core.Reset)
}
