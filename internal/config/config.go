package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dshills/med/internal/config/layer"
	"github.com/dshills/med/internal/config/loader"
	"github.com/dshills/med/internal/input/key"
	"github.com/dshills/med/internal/renderer/core"
)

// EnvPrefix is the prefix of environment variables read as settings.
const EnvPrefix = "MED_"

// EnvConfigPath names the environment variable holding a config file path.
const EnvConfigPath = "MED_CONFIG"

// configFileNames are tried in order inside the user config directory.
var configFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Config is the typed, merged configuration.
type Config struct {
	Editor  EditorConfig
	Keys    KeysConfig
	Theme   ThemeConfig
	Logging LoggingConfig

	// Path is the config file that was loaded, or "" when none was found.
	Path string

	layers *layer.Manager
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			LineNumbers:   true,
			EscapeTimeout: 25 * time.Millisecond,
		},
		Keys: KeysConfig{
			Save: []string{"Ctrl+S"},
			Quit: []string{"Ctrl+Q", "Ctrl+X"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Option configures Load.
type Option func(*options)

type options struct {
	path      string
	configDir string
	fs        loader.FileSystem
	env       bool
	overrides map[string]any
}

// WithPath loads the config file at path. The file must exist.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithConfigDir sets the directory searched for config.toml / config.yaml
// when no explicit path is given. It defaults to <UserConfigDir>/med.
func WithConfigDir(dir string) Option {
	return func(o *options) {
		o.configDir = dir
	}
}

// WithEnv enables or disables the environment layer. It is enabled by default.
func WithEnv(enable bool) Option {
	return func(o *options) {
		o.env = enable
	}
}

// WithOverrides adds a highest-precedence layer, typically from command-line
// flags. Keys are dot-separated paths such as "logging.level".
func WithOverrides(values map[string]any) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[string]any)
		}
		for k, v := range values {
			o.overrides[k] = v
		}
	}
}

// Load builds the configuration from defaults, the config file, the
// environment and overrides, then validates it.
func Load(opts ...Option) (*Config, error) {
	o := options{fs: loader.DefaultFS(), env: true}
	for _, opt := range opts {
		opt(&o)
	}

	layers := layer.NewManager()
	layers.AddLayer(layer.NewLayer(layer.SourceBuiltin, Default().toMap()))

	path, err := resolvePath(o)
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := loader.ForPath(o.fs, path).Load()
		if err != nil {
			return nil, err
		}
		user := layer.NewLayer(layer.SourceUser, data)
		user.Path = path
		layers.AddLayer(user)
	}

	if o.env {
		data, err := loader.NewEnvLoader(EnvPrefix).Load()
		if err != nil {
			return nil, err
		}
		layers.AddLayer(layer.NewLayer(layer.SourceEnv, data))
	}

	if len(o.overrides) > 0 {
		data := make(map[string]any)
		for p, v := range o.overrides {
			setPath(data, p, v)
		}
		layers.AddLayer(layer.NewLayer(layer.SourceArgs, data))
	}

	cfg := Default()
	if err := cfg.decode(layers.Merge()); err != nil {
		if src := sourceOfError(layers, err); src != "" {
			return nil, fmt.Errorf("%s: %w", src, err)
		}
		return nil, err
	}
	cfg.Path = path
	cfg.layers = layers

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePath picks the config file: explicit path, then $MED_CONFIG, then
// the first existing file in the config directory.
func resolvePath(o options) (string, error) {
	explicit := o.path
	if explicit == "" && o.env {
		explicit = os.Getenv(EnvConfigPath)
	}
	if explicit != "" {
		if _, err := o.fs.Stat(explicit); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", ErrFileNotFound, explicit)
			}
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	dir := o.configDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", nil
		}
		dir = filepath.Join(base, "med")
	}
	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		if _, err := o.fs.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// SourceOf returns the name of the layer that supplied the setting at the
// dot-separated path, or "" if unknown.
func (c *Config) SourceOf(path string) string {
	if c.layers == nil {
		return ""
	}
	if l := c.layers.SourceOf(path); l != nil {
		if l.Path != "" {
			return l.Path
		}
		return l.Name
	}
	return ""
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if c.Editor.EscapeTimeout < 0 {
		return fmt.Errorf("%w: editor.escape_timeout must not be negative", ErrInvalidValue)
	}

	if err := validateKeys("keys.save", c.Keys.Save); err != nil {
		return err
	}
	if err := validateKeys("keys.quit", c.Keys.Quit); err != nil {
		return err
	}
	for _, s := range c.Keys.Save {
		se, _ := key.Parse(s)
		for _, q := range c.Keys.Quit {
			if qe, _ := key.Parse(q); qe == se {
				return fmt.Errorf("%w: %s is bound to both save and quit", ErrInvalidValue, s)
			}
		}
	}

	for path, color := range map[string]string{
		"theme.gutter":    c.Theme.Gutter,
		"theme.status_fg": c.Theme.StatusFg,
		"theme.status_bg": c.Theme.StatusBg,
	} {
		if color == "" {
			continue
		}
		if _, err := core.ParseColor(color); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, path, err)
		}
	}

	if !isLogLevel(c.Logging.Level) {
		return fmt.Errorf("%w: logging.level %q (want debug, info, warn or error)", ErrInvalidValue, c.Logging.Level)
	}
	return nil
}

func validateKeys(path string, specs []string) error {
	if len(specs) == 0 {
		return fmt.Errorf("%w: %s needs at least one key", ErrInvalidValue, path)
	}
	for _, s := range specs {
		if _, err := key.Parse(s); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, path, err)
		}
	}
	return nil
}

func isLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}
