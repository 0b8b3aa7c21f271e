package renderer

import (
	"io"
	"strings"

	"github.com/dshills/med/internal/engine/cursor"
	"github.com/dshills/med/internal/renderer/core"
	"github.com/dshills/med/internal/renderer/gutter"
	"github.com/dshills/med/internal/renderer/statusline"
	"github.com/dshills/med/internal/renderer/viewport"
)

// BufferReader provides read access to buffer content.
// This interface abstracts the engine for rendering.
type BufferReader interface {
	// LineCount returns the total number of lines in the buffer.
	LineCount() int

	// LineText returns the text content of a line (0-indexed).
	LineText(line int) string
}

// Options configures the renderer.
type Options struct {
	ShowLineNumbers bool
	Theme           Theme
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		ShowLineNumbers: true,
		Theme:           DefaultTheme(),
	}
}

// Renderer composes full-screen frames and writes them to out.
type Renderer struct {
	out      io.Writer
	gutter   *gutter.Gutter
	status   *statusline.StatusLine
	viewport viewport.Viewport
	frame    strings.Builder
}

// New creates a renderer writing to out.
func New(out io.Writer, opts Options) *Renderer {
	gcfg := gutter.DefaultConfig()
	gcfg.ShowLineNumbers = opts.ShowLineNumbers
	gcfg.Style = opts.Theme.Gutter

	status := statusline.New()
	status.SetStyle(opts.Theme.StatusBar)

	return &Renderer{
		out:    out,
		gutter: gutter.New(gcfg),
		status: status,
	}
}

// StatusLine returns the status line so callers can update file state and
// messages between frames.
func (r *Renderer) StatusLine() *statusline.StatusLine {
	return r.status
}

// Viewport returns the current viewport.
func (r *Renderer) Viewport() viewport.Viewport {
	return r.viewport
}

// GutterWidth returns the gutter width for a buffer of totalLines.
func (r *Renderer) GutterWidth(totalLines int) int {
	return r.gutter.Width(totalLines)
}

// Render scrolls the viewport to cur and paints one frame of buf on a
// screen width columns by height rows.
func (r *Renderer) Render(buf BufferReader, cur cursor.Cursor, width, height int) error {
	width = max(width, 1)
	height = max(height, 1)

	total := buf.LineCount()
	gutterWidth := r.gutter.Width(total)
	textCols := max(width-gutterWidth, 1)
	// On a one-row screen the status bar takes the only row.
	drawRows := max(height-viewport.StatusRows, 0)

	r.viewport.Scroll(cur.Row, cur.Col, height, textCols)
	r.status.SetPosition(cur.Row+1, cur.Col+1)
	r.status.SetTotalLines(total)

	f := &r.frame
	f.Reset()
	f.WriteString(core.HideCursor)
	f.WriteString(core.CursorHome)
	f.WriteString(core.ClearScreen)

	for i := 0; i < drawRows; i++ {
		row := r.viewport.RowOffset + i
		switch {
		case row < total:
			f.WriteString(r.gutter.LineNumber(row, total))
			f.WriteString(visibleText(buf.LineText(row), r.viewport.ColOffset, textCols))
		case row == total:
			f.WriteString(r.gutter.Filler(total))
		}
		f.WriteString(core.ClearLine)
		f.WriteString(core.NewLine)
	}

	r.status.Render(f, height, width)

	y, x := r.viewport.ScreenPosition(cur.Row, cur.Col)
	f.WriteString(core.MoveTo(min(y+1, height), min(x+gutterWidth+1, width)))
	f.WriteString(core.ShowCursor)

	_, err := io.WriteString(r.out, f.String())
	return err
}

// visibleText returns the part of line starting at byte offset from, at
// most width bytes long.
func visibleText(line string, from, width int) string {
	if len(line) <= from {
		return ""
	}
	line = line[from:]
	if len(line) > width {
		line = line[:width]
	}
	return line
}
