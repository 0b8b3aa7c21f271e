package app

import (
	"context"
	"errors"
	"fmt"
)

// Run takes over the terminal and edits the document until the user quits
// or ctx is cancelled. The terminal is restored on every return path.
// A quit returns nil.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer app.backend.Shutdown()

	width, height := app.backend.Size()
	app.logger.WithFields(map[string]any{
		"version": app.opts.Build.Version,
		"commit":  app.opts.Build.Commit,
		"width":   width,
		"height":  height,
	}).Info("session started")

	for {
		if err := ctx.Err(); err != nil {
			app.logger.Info("session cancelled: %v", err)
			return err
		}

		if err := app.render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		if err := app.handleKey(app.decoder.ReadKey()); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.WithField("saved", app.document.Saved()).Info("quit")
				return nil
			}
			return err
		}
	}
}

// render paints the current document state.
func (app *Application) render() error {
	status := app.renderer.StatusLine()
	status.SetSaved(app.document.Saved())

	width, height := app.backend.Size()
	eng := app.document.Engine()
	return app.renderer.Render(eng, eng.Cursor(), width, height)
}
