package app

import (
	"fmt"

	"github.com/dshills/med/internal/input/key"
	"github.com/dshills/med/internal/input/keymap"
)

// handleKey applies one key event to the document. It returns ErrQuit when
// the key is bound to quit; every other key, including unknown ones,
// returns nil.
func (app *Application) handleKey(ev key.Event) error {
	eng := app.document.Engine()
	eng.Revalidate()
	app.renderer.StatusLine().ClearMessage()

	action := app.keymap.Action(ev)
	switch action {
	case keymap.ActionQuit:
		return ErrQuit
	case keymap.ActionSave:
		app.save()
	case "":
		switch {
		case ev.IsPrintable():
			eng.InsertChar(ev.Byte)
		case ev.Kind == key.Unknown:
			app.logger.Debug("ignored unknown escape sequence")
		}
	default:
		app.apply(action)
	}
	return nil
}

// apply runs an editing or movement action.
func (app *Application) apply(action string) {
	eng := app.document.Engine()
	switch action {
	case keymap.ActionSplitLine:
		eng.SplitLine()
	case keymap.ActionDeleteBackward:
		eng.DeleteBackward()
	case keymap.ActionMoveUp:
		eng.MoveUp()
	case keymap.ActionMoveDown:
		eng.MoveDown()
	case keymap.ActionMoveLeft:
		eng.MoveLeft()
	case keymap.ActionMoveRight:
		eng.MoveRight()
	case keymap.ActionMoveLineStart:
		eng.MoveHome()
	case keymap.ActionMoveLineEnd:
		eng.MoveLineEnd()
	case keymap.ActionMoveFirstLine:
		eng.MoveDocStart()
	case keymap.ActionMoveLastLine:
		eng.MoveDocEnd()
	default:
		app.logger.Warn("unhandled action %q", action)
	}
}

// save writes the document and reports the outcome on the status line.
// A failed save leaves the session running.
func (app *Application) save() {
	status := app.renderer.StatusLine()
	log := app.logger.WithComponent("document")

	res, err := app.document.Save()
	if err != nil {
		log.WithField("file", app.document.Path).Error("save failed: %v", err)
		status.SetMessage(fmt.Sprintf("save failed: %v", err))
		return
	}

	log.WithFields(map[string]any{
		"file":  app.document.Path,
		"lines": res.Lines,
		"bytes": res.Bytes,
	}).Info("saved")
	status.SetMessage(fmt.Sprintf("wrote %d lines", res.Lines))
}
