package engine

import (
	"github.com/dshills/med/internal/engine/buffer"
	"github.com/dshills/med/internal/engine/cursor"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.buf = buffer.NewBufferFromString(content)
	}
}

// WithLines sets the initial lines of the engine.
func WithLines(lines ...string) Option {
	return func(e *Engine) {
		e.buf = buffer.NewBufferFromLines(lines)
	}
}

// WithBuffer uses an existing buffer.
func WithBuffer(b *buffer.Buffer) Option {
	return func(e *Engine) {
		if b != nil {
			e.buf = b
		}
	}
}

// WithCursor sets the initial cursor. It is clamped to the content.
func WithCursor(row, col int) Option {
	return func(e *Engine) {
		e.cur = cursor.New(row, col)
	}
}
