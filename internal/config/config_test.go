package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if !cfg.Editor.LineNumbers {
		t.Error("line numbers should be on by default")
	}
	if cfg.Editor.EscapeTimeout != 25*time.Millisecond {
		t.Errorf("EscapeTimeout = %v, want 25ms", cfg.Editor.EscapeTimeout)
	}
	if !reflect.DeepEqual(cfg.Keys.Quit, []string{"Ctrl+Q", "Ctrl+X"}) {
		t.Errorf("Quit = %v", cfg.Keys.Quit)
	}
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load(WithConfigDir(t.TempDir()), WithEnv(false))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}

	want := Default()
	if !reflect.DeepEqual(cfg.Editor, want.Editor) || !reflect.DeepEqual(cfg.Keys, want.Keys) ||
		cfg.Theme != want.Theme || cfg.Logging != want.Logging {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[editor]
line_numbers = false

[keys]
save = ["Ctrl+W"]

[theme]
status_bg = "#303030"

[logging]
level = "debug"
`)

	cfg, err := Load(WithConfigDir(dir), WithEnv(false))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	if cfg.Editor.LineNumbers {
		t.Error("line_numbers should be false")
	}
	if cfg.Editor.EscapeTimeout != 25*time.Millisecond {
		t.Errorf("absent escape_timeout should keep default, got %v", cfg.Editor.EscapeTimeout)
	}
	if !reflect.DeepEqual(cfg.Keys.Save, []string{"Ctrl+W"}) {
		t.Errorf("Save = %v", cfg.Keys.Save)
	}
	if !reflect.DeepEqual(cfg.Keys.Quit, []string{"Ctrl+Q", "Ctrl+X"}) {
		t.Errorf("absent quit should keep default, got %v", cfg.Keys.Quit)
	}
	if cfg.Theme.StatusBg != "#303030" {
		t.Errorf("StatusBg = %q", cfg.Theme.StatusBg)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if got := cfg.SourceOf("editor.line_numbers"); got != path {
		t.Errorf("SourceOf(editor.line_numbers) = %q, want %q", got, path)
	}
	if got := cfg.SourceOf("editor.escape_timeout"); got != "defaults" {
		t.Errorf("SourceOf(editor.escape_timeout) = %q, want defaults", got)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yml", `
editor:
  escape_timeout: 5ms
keys:
  quit: <C-q>
`)

	cfg, err := Load(WithConfigDir(dir), WithEnv(false))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Editor.EscapeTimeout != 5*time.Millisecond {
		t.Errorf("EscapeTimeout = %v, want 5ms", cfg.Editor.EscapeTimeout)
	}
	if !reflect.DeepEqual(cfg.Keys.Quit, []string{"<C-q>"}) {
		t.Errorf("Quit = %v", cfg.Keys.Quit)
	}
}

func TestLoad_TOMLPreferredOverYAML(t *testing.T) {
	dir := t.TempDir()
	toml := writeFile(t, dir, "config.toml", "[logging]\nlevel = \"warn\"\n")
	writeFile(t, dir, "config.yaml", "logging:\n  level: error\n")

	cfg, err := Load(WithConfigDir(dir), WithEnv(false))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Path != toml || cfg.Logging.Level != "warn" {
		t.Errorf("loaded %q with level %q", cfg.Path, cfg.Logging.Level)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(WithPath(filepath.Join(t.TempDir(), "nope.toml")), WithEnv(false))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestLoad_ParseError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "[editor\n")

	_, err := Load(WithPath(path), WithEnv(false))

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestLoad_WrongType(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "[editor]\nline_numbers = \"sometimes\"\n")

	_, err := Load(WithPath(path), WithEnv(false))
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if !strings.Contains(err.Error(), path) || !strings.Contains(err.Error(), "editor.line_numbers") {
		t.Errorf("error should name file and setting: %v", err)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", "[editor]\nline_numbers = true\nescape_timeout = \"50ms\"\n")

	t.Setenv("MED_LINE_NUMBERS", "false")
	t.Setenv("MED_ESCAPE_TIMEOUT", "10ms")

	cfg, err := Load(WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Editor.LineNumbers {
		t.Error("MED_LINE_NUMBERS should override the file")
	}
	if cfg.Editor.EscapeTimeout != 10*time.Millisecond {
		t.Errorf("EscapeTimeout = %v, want 10ms", cfg.Editor.EscapeTimeout)
	}
	if got := cfg.SourceOf("editor.line_numbers"); got != "environment" {
		t.Errorf("SourceOf = %q, want environment", got)
	}
}

func TestLoad_EnvScalars(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(*Config) bool
	}{
		{"zero timeout", map[string]string{"MED_ESCAPE_TIMEOUT": "0"},
			func(c *Config) bool { return c.Editor.EscapeTimeout == 0 }},
		{"bare millis", map[string]string{"MED_ESCAPE_TIMEOUT": "40"},
			func(c *Config) bool { return c.Editor.EscapeTimeout == 40*time.Millisecond }},
		{"numeric file name", map[string]string{"MED_LOG_FILE": "1"},
			func(c *Config) bool { return c.Logging.File == "1" }},
		{"gutter off by number", map[string]string{"MED_LINE_NUMBERS": "0"},
			func(c *Config) bool { return !c.Editor.LineNumbers }},
		{"gutter off by word", map[string]string{"MED_LINE_NUMBERS": "off"},
			func(c *Config) bool { return !c.Editor.LineNumbers }},
		{"unmapped theme color", map[string]string{"MED_THEME_STATUS_BG": "#202020"},
			func(c *Config) bool { return c.Theme.StatusBg == "#202020" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(WithConfigDir(t.TempDir()))
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("unexpected config: %+v", cfg)
			}
		})
	}
}

func TestLoad_EnvConfigPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", "logging:\n  level: error\n")
	t.Setenv("MED_CONFIG", path)

	cfg, err := Load(WithConfigDir(t.TempDir()))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Path != path || cfg.Logging.Level != "error" {
		t.Errorf("loaded %q with level %q", cfg.Path, cfg.Logging.Level)
	}
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("MED_LOG_LEVEL", "warn")

	cfg, err := Load(
		WithConfigDir(t.TempDir()),
		WithOverrides(map[string]any{
			"logging.level": "debug",
			"logging.file":  "/tmp/med-test.log",
		}),
	)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.File != "/tmp/med-test.log" {
		t.Errorf("File = %q", cfg.Logging.File)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative timeout", func(c *Config) { c.Editor.EscapeTimeout = -time.Millisecond }},
		{"empty save", func(c *Config) { c.Keys.Save = nil }},
		{"bad key spec", func(c *Config) { c.Keys.Quit = []string{"Hyper+Q"} }},
		{"overlapping keys", func(c *Config) { c.Keys.Save = []string{"<C-q>"} }},
		{"bad color", func(c *Config) { c.Theme.Gutter = "grey" }},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidValue) {
				t.Errorf("expected ErrInvalidValue, got %v", err)
			}
		})
	}
}

func TestDecodeCoercions(t *testing.T) {
	cfg := Default()
	err := cfg.decode(map[string]any{
		"editor": map[string]any{
			"line_numbers":   "false",
			"escape_timeout": "40",
		},
		"keys": map[string]any{
			"save": "Ctrl+W",
		},
		"unknown": map[string]any{"ignored": 1},
	})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cfg.Editor.LineNumbers {
		t.Error("string \"false\" should decode to false")
	}
	if cfg.Editor.EscapeTimeout != 40*time.Millisecond {
		t.Errorf("bare number should be milliseconds, got %v", cfg.Editor.EscapeTimeout)
	}
	if !reflect.DeepEqual(cfg.Keys.Save, []string{"Ctrl+W"}) {
		t.Errorf("Save = %v", cfg.Keys.Save)
	}
}

func TestDecodeListWithNonString(t *testing.T) {
	cfg := Default()
	err := cfg.decode(map[string]any{"keys": map[string]any{"quit": []any{"Ctrl+Q", int64(3)}}})

	var verr *ValueError
	if !errors.As(err, &verr) || verr.Path != "keys.quit" {
		t.Errorf("expected ValueError for keys.quit, got %v", err)
	}
}
