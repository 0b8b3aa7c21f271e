package engine

import (
	"io"

	"github.com/dshills/med/internal/engine/buffer"
	"github.com/dshills/med/internal/engine/cursor"
)

// Engine is the editing model: a buffer, a cursor and a modified flag.
type Engine struct {
	buf      *buffer.Buffer
	cur      cursor.Cursor
	modified bool
}

// New creates an engine. Without options it holds a single empty line.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.buf == nil {
		e.buf = buffer.NewBuffer()
	}
	e.cur = e.cur.Clamp(e.buf)
	return e
}

// NewFromReader creates an engine with content read from r.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	b, err := buffer.Read(r)
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithBuffer(b)}, opts...)...), nil
}

// Read Operations

// Buffer returns the underlying buffer.
// Mutating it directly bypasses the modified flag; call Revalidate afterwards.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursor returns the current cursor.
func (e *Engine) Cursor() cursor.Cursor {
	return e.cur
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	return e.buf.LineCount()
}

// LineText returns the text of a line.
func (e *Engine) LineText(line int) string {
	return e.buf.LineText(line)
}

// Lines returns a copy of all lines.
func (e *Engine) Lines() []string {
	return e.buf.Lines()
}

// Modified reports whether the content changed since the last save.
func (e *Engine) Modified() bool {
	return e.modified
}

// SetModified sets the modified flag.
func (e *Engine) SetModified(modified bool) {
	e.modified = modified
}

// Revalidate repairs the cursor if it no longer fits the buffer.
// It is run before every key is dispatched, independently of the clamping
// done by motions.
func (e *Engine) Revalidate() {
	if !e.cur.Valid(e.buf) {
		e.cur = e.cur.Clamp(e.buf)
	}
}

// Edit Operations

// InsertChar inserts a printable ASCII byte at the cursor and advances it.
// Other bytes are ignored. Returns true if the buffer changed.
func (e *Engine) InsertChar(ch byte) bool {
	if ch < 0x20 || ch > 0x7e {
		return false
	}
	if !e.buf.InsertByte(e.cur.Row, e.cur.Col, ch) {
		return false
	}
	e.cur.Col++
	e.modified = true
	return true
}

// SplitLine moves the text after the cursor to a new line below and puts
// the cursor at its start.
func (e *Engine) SplitLine() {
	if !e.buf.SplitLine(e.cur.Row, e.cur.Col) {
		return
	}
	e.cur = cursor.New(e.cur.Row+1, 0)
	e.modified = true
}

// DeleteBackward removes the byte before the cursor. At column 0 it merges
// the line onto the previous one. At the start of the document it does
// nothing. Returns true if the buffer changed.
func (e *Engine) DeleteBackward() bool {
	if e.cur.Col > 0 {
		if !e.buf.DeleteByte(e.cur.Row, e.cur.Col-1) {
			return false
		}
		e.cur.Col--
		e.modified = true
		return true
	}
	if e.cur.Row == 0 {
		return false
	}
	at := e.buf.JoinLine(e.cur.Row)
	if at < 0 {
		return false
	}
	e.cur = cursor.New(e.cur.Row-1, at)
	e.modified = true
	return true
}

// Motion Operations

// MoveUp moves the cursor one line up.
func (e *Engine) MoveUp() { e.cur = e.cur.Up(e.buf) }

// MoveDown moves the cursor one line down.
func (e *Engine) MoveDown() { e.cur = e.cur.Down(e.buf) }

// MoveLeft moves the cursor one byte left.
func (e *Engine) MoveLeft() { e.cur = e.cur.Left() }

// MoveRight moves the cursor one byte right.
func (e *Engine) MoveRight() { e.cur = e.cur.Right(e.buf) }

// MoveHome moves the cursor to the start of the line.
func (e *Engine) MoveHome() { e.cur = e.cur.Home() }

// MoveLineEnd moves the cursor to the end of the line.
func (e *Engine) MoveLineEnd() { e.cur = e.cur.LineEnd(e.buf) }

// MoveDocStart moves the cursor to the start of the document.
func (e *Engine) MoveDocStart() { e.cur = cursor.DocStart() }

// MoveDocEnd moves the cursor to the end of the last line.
func (e *Engine) MoveDocEnd() { e.cur = cursor.DocEnd(e.buf) }
