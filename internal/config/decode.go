package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/med/internal/config/layer"
)

// ValueError reports a setting whose value has the wrong type or format.
type ValueError struct {
	Path    string
	Value   any
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Path, e.Message, e.Value)
}

func (e *ValueError) Unwrap() error {
	return ErrInvalidValue
}

// toMap returns c as a nested settings map, the shape produced by loaders.
func (c *Config) toMap() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"line_numbers":   c.Editor.LineNumbers,
			"escape_timeout": c.Editor.EscapeTimeout.String(),
		},
		"keys": map[string]any{
			"save": toAnySlice(c.Keys.Save),
			"quit": toAnySlice(c.Keys.Quit),
		},
		"theme": map[string]any{
			"gutter":    c.Theme.Gutter,
			"status_fg": c.Theme.StatusFg,
			"status_bg": c.Theme.StatusBg,
		},
		"logging": map[string]any{
			"level": c.Logging.Level,
			"file":  c.Logging.File,
		},
	}
}

// decode overlays the settings in data onto c. Paths absent from data keep
// their current values; unknown paths are ignored.
func (c *Config) decode(data map[string]any) error {
	d := &decoder{data: data}
	d.boolean("editor.line_numbers", &c.Editor.LineNumbers)
	d.duration("editor.escape_timeout", &c.Editor.EscapeTimeout)
	d.list("keys.save", &c.Keys.Save)
	d.list("keys.quit", &c.Keys.Quit)
	d.text("theme.gutter", &c.Theme.Gutter)
	d.text("theme.status_fg", &c.Theme.StatusFg)
	d.text("theme.status_bg", &c.Theme.StatusBg)
	d.text("logging.level", &c.Logging.Level)
	d.text("logging.file", &c.Logging.File)
	return d.err
}

// decoder converts loosely typed loader values. It keeps the first error.
type decoder struct {
	data map[string]any
	err  error
}

func (d *decoder) value(path string) (any, bool) {
	if d.err != nil {
		return nil, false
	}
	return getPath(d.data, path)
}

func (d *decoder) fail(path string, v any, msg string) {
	d.err = &ValueError{Path: path, Value: v, Message: msg}
}

// boolean accepts booleans and the strings understood by strconv.ParseBool
// plus yes/no/on/off.
func (d *decoder) boolean(path string, dst *bool) {
	v, ok := d.value(path)
	if !ok {
		return
	}
	switch x := v.(type) {
	case bool:
		*dst = x
	case string:
		b, ok := parseBool(x)
		if !ok {
			d.fail(path, v, "expected a boolean")
			return
		}
		*dst = b
	default:
		d.fail(path, v, "expected a boolean")
	}
}

// duration accepts Go duration strings; bare numbers are milliseconds.
func (d *decoder) duration(path string, dst *time.Duration) {
	v, ok := d.value(path)
	if !ok {
		return
	}
	switch x := v.(type) {
	case time.Duration:
		*dst = x
	case string:
		if ms, err := strconv.ParseInt(x, 10, 64); err == nil {
			*dst = time.Duration(ms) * time.Millisecond
			return
		}
		dur, err := time.ParseDuration(x)
		if err != nil {
			d.fail(path, v, "expected a duration such as \"25ms\"")
			return
		}
		*dst = dur
	case int:
		*dst = time.Duration(x) * time.Millisecond
	case int64:
		*dst = time.Duration(x) * time.Millisecond
	case float64:
		*dst = time.Duration(x * float64(time.Millisecond))
	default:
		d.fail(path, v, "expected a duration")
	}
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "yes", "on":
		return true, true
	case "no", "off":
		return false, true
	}
	b, err := strconv.ParseBool(s)
	return b, err == nil
}

func (d *decoder) text(path string, dst *string) {
	v, ok := d.value(path)
	if !ok {
		return
	}
	s, ok := v.(string)
	if !ok {
		d.fail(path, v, "expected a string")
		return
	}
	*dst = s
}

// list accepts a list of strings or a single string.
func (d *decoder) list(path string, dst *[]string) {
	v, ok := d.value(path)
	if !ok {
		return
	}
	switch x := v.(type) {
	case string:
		*dst = []string{x}
	case []string:
		*dst = append([]string(nil), x...)
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				d.fail(path, v, "expected a list of strings")
				return
			}
			out = append(out, s)
		}
		*dst = out
	default:
		d.fail(path, v, "expected a list of strings")
	}
}

// sourceOfError names the layer that supplied the setting behind err.
func sourceOfError(layers *layer.Manager, err error) string {
	var verr *ValueError
	if !errors.As(err, &verr) {
		return ""
	}
	l := layers.SourceOf(verr.Path)
	if l == nil {
		return ""
	}
	if l.Path != "" {
		return l.Path
	}
	return l.Name
}

func getPath(data map[string]any, path string) (any, bool) {
	current := any(data)
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = m[part]; !ok {
			return nil, false
		}
	}
	return current, true
}

func setPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

func toAnySlice(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
