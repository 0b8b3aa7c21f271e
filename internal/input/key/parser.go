package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// namedKeys maps lower-case key names to the event the decoder produces.
var namedKeys = map[string]Event{
	"enter":     ControlEvent(CodeEnter),
	"return":    ControlEvent(CodeEnter),
	"cr":        ControlEvent(CodeEnter),
	"escape":    ControlEvent(CodeEscape),
	"esc":       ControlEvent(CodeEscape),
	"tab":       ControlEvent(CodeTab),
	"backspace": ControlEvent(CodeDelete),
	"bs":        ControlEvent(CodeDelete),
	"space":     LiteralEvent(' '),
	"up":        NavEvent(NavUp),
	"down":      NavEvent(NavDown),
	"left":      NavEvent(NavLeft),
	"right":     NavEvent(NavRight),
	"home":      NavEvent(NavHome),
	"end":       NavEvent(NavEnd),
}

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Named keys: "Enter", "Escape", "Tab", "Backspace", "Up", "Home"
//   - Control chords: "Ctrl+S", "ctrl+q", "Ctrl+Home", "Ctrl+End"
//   - Vim-style: "<C-s>", "<CR>", "<Esc>", "<BS>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseSingle(spec)
}

// MustParse is like Parse but panics on error. Intended for built-in defaults.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(fmt.Sprintf("key.MustParse(%q): %v", spec, err))
	}
	return ev
}

// parseVimStyle parses the inside of "<...>", e.g. "C-s" or "CR".
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	parts := strings.Split(inner, "-")
	if len(parts) == 1 {
		return parseSingle(inner)
	}
	if len(parts) != 2 || strings.ToLower(strings.TrimSpace(parts[0])) != "c" {
		return Event{}, fmt.Errorf("%w: only the C- modifier is supported in %q", ErrInvalidSpec, inner)
	}
	return parseCtrl(strings.TrimSpace(parts[1]))
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	if len(parts) != 2 {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}
	switch strings.ToLower(strings.TrimSpace(parts[0])) {
	case "ctrl", "control", "c":
	default:
		return Event{}, fmt.Errorf("%w: unsupported modifier %q", ErrInvalidSpec, parts[0])
	}
	return parseCtrl(strings.TrimSpace(parts[1]))
}

// parseCtrl resolves the key part of a Ctrl chord.
func parseCtrl(k string) (Event, error) {
	switch strings.ToLower(k) {
	case "home":
		return NavEvent(NavCtrlHome), nil
	case "end":
		return NavEvent(NavCtrlEnd), nil
	}
	if len(k) != 1 {
		return Event{}, fmt.Errorf("%w: Ctrl+%s", ErrInvalidSpec, k)
	}
	c := k[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < '@' || c > '_' {
		return Event{}, fmt.Errorf("%w: Ctrl+%s", ErrInvalidSpec, k)
	}
	return ControlEvent(CtrlCode(c)), nil
}

// parseSingle parses a single character or key name.
func parseSingle(spec string) (Event, error) {
	if ev, ok := namedKeys[strings.ToLower(spec)]; ok {
		return ev, nil
	}
	if len(spec) == 1 && spec[0] >= 0x20 && spec[0] <= 0x7e {
		return LiteralEvent(spec[0]), nil
	}
	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}
