package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Style is a ready-to-write SGR sequence. The empty Style writes nothing.
type Style string

// Default styles.
const (
	StyleGutter    Style = "\x1b[90m"
	StyleStatusBar Style = "\x1b[30;47m"
)

// ParseColor parses a "#RRGGBB" (or "#RGB") color.
func ParseColor(hex string) (colorful.Color, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c, nil
}

// Foreground returns the 24-bit foreground SGR parameters for c.
func Foreground(c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("38;2;%d;%d;%d", r, g, b)
}

// Background returns the 24-bit background SGR parameters for c.
func Background(c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("48;2;%d;%d;%d", r, g, b)
}

// StyleFromHex builds a Style from optional foreground and background colors.
// Empty arguments are skipped; when both are empty fallback is returned.
func StyleFromHex(fg, bg string, fallback Style) (Style, error) {
	var params []string
	if fg != "" {
		c, err := ParseColor(fg)
		if err != nil {
			return "", err
		}
		params = append(params, Foreground(c))
	}
	if bg != "" {
		c, err := ParseColor(bg)
		if err != nil {
			return "", err
		}
		params = append(params, Background(c))
	}
	if len(params) == 0 {
		return fallback, nil
	}
	return Style(SGR(strings.Join(params, ";"))), nil
}
