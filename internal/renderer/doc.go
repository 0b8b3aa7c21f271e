// Package renderer provides the display layer for the editor.
//
// The renderer is responsible for:
//   - Scrolling the viewport so the cursor stays visible
//   - Drawing visible buffer lines behind the line-number gutter
//   - Drawing the status bar on the last screen row
//   - Placing the terminal cursor at the edit position
//
// Each frame is composed in memory and written to the backend in a single
// Write call, so a frame is never shown half drawn.
//
// Usage:
//
//	term := backend.NewTerminal(os.Stdin, os.Stdout)
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.StatusLine().SetFilename("notes.txt")
//	r.Render(engine, engine.Cursor(), width, height)
package renderer
