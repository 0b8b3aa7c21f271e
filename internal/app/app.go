// Package app provides the main application structure and coordination
// for the med editor. It wires the document, key decoding, key bindings and
// the renderer together and runs the edit loop.
package app

import (
	"fmt"
	"sync/atomic"

	"github.com/dshills/med/internal/config"
	"github.com/dshills/med/internal/input/key"
	"github.com/dshills/med/internal/input/keymap"
	"github.com/dshills/med/internal/renderer"
	"github.com/dshills/med/internal/renderer/backend"
)

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// String returns a one-line version banner.
func (b BuildInfo) String() string {
	return fmt.Sprintf("med %s (commit %s, built %s)", b.Version, b.Commit, b.Date)
}

// Options configures the application.
type Options struct {
	// File is the path of the file to edit.
	File string

	// Config holds settings; nil uses config.Default().
	Config *config.Config

	// Backend is the terminal to run on. Required.
	Backend backend.Backend

	// Logger receives session logs; nil discards them.
	Logger *Logger

	// Build is reported in the startup log line.
	Build BuildInfo
}

// Application is the editor session: one document on one terminal.
type Application struct {
	backend  backend.Backend
	config   *config.Config
	document *Document
	decoder  *key.Decoder
	keymap   *keymap.ParsedKeymap
	renderer *renderer.Renderer
	logger   *Logger

	running atomic.Bool
	opts    Options
}

// New creates a new Application and loads its document. It does not touch
// the terminal; that happens in Run.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, ErrNoBackend
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	logger := opts.Logger.WithComponent("app")

	cfg := opts.Config

	km, err := keymap.WithCommandKeys(cfg.Keys.Save, cfg.Keys.Quit).Parse()
	if err != nil {
		return nil, &InitError{Component: "keymap", Err: err}
	}

	theme, err := renderer.NewTheme(cfg.Theme.Gutter, cfg.Theme.StatusFg, cfg.Theme.StatusBg)
	if err != nil {
		return nil, &InitError{Component: "theme", Err: err}
	}

	doc, err := LoadDocument(opts.File)
	if err != nil {
		return nil, err
	}

	r := renderer.New(opts.Backend, renderer.Options{
		ShowLineNumbers: cfg.Editor.LineNumbers,
		Theme:           theme,
	})
	r.StatusLine().SetFilename(doc.Path)

	app := &Application{
		backend:  opts.Backend,
		config:   cfg,
		document: doc,
		decoder:  key.NewDecoder(opts.Backend),
		keymap:   km,
		renderer: r,
		logger:   logger,
		opts:     opts,
	}

	app.logger.WithComponent("document").WithFields(map[string]any{
		"file":        doc.Path,
		"existed":     doc.onDisk,
		"lines":       doc.Engine().LineCount(),
		"line_ending": doc.Engine().Buffer().LineEnding(),
	}).Info("document loaded")

	return app, nil
}

// Document returns the document being edited.
func (app *Application) Document() *Document {
	return app.document
}

// Config returns the application configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}
