// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"bytes"
	"errors"
	"io"
	"sync"
)

// Default screen dimensions used when the terminal size cannot be queried.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ErrNotTerminal is returned when the input or output is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Backend defines the interface for terminal backends.
// Implementations own the terminal mode and carry raw bytes in both
// directions: key input is read with Read, frames are written with Write.
type Backend interface {
	// Init prepares the backend for use (raw mode, alternate screen).
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	// It is safe to call more than once.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	io.Reader
	io.Writer
}

// NullBackend is an in-memory backend for testing.
//
// Input is scripted as chunks: each Read returns bytes from the current
// chunk only, so a chunk models one burst of bytes delivered by the
// terminal. ReadPending returns the unread rest of a partially consumed
// chunk and nothing at a chunk boundary. Output is captured.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	chunks        [][]byte
	partial       bool
	out           bytes.Buffer
	initialized   bool
	shutdown      bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{width: width, height: height}
}

// QueueInput appends input chunks.
func (b *NullBackend) QueueInput(chunks ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, c := range chunks {
		if c != "" {
			b.chunks = append(b.chunks, []byte(c))
		}
	}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.initialized = true
	return nil
}

func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.shutdown = true
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.width, b.height
}

// Resize changes the reported dimensions.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.width, b.height = width, height
}

// Read returns bytes from the current input chunk, or io.EOF once the
// script is exhausted.
func (b *NullBackend) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.chunks) == 0 {
		return 0, io.EOF
	}
	return b.consume(p), nil
}

// ReadPending returns the rest of a partially read chunk without blocking.
func (b *NullBackend) ReadPending(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.partial || len(b.chunks) == 0 {
		return 0, nil
	}
	return b.consume(p), nil
}

func (b *NullBackend) consume(p []byte) int {
	n := copy(p, b.chunks[0])
	if n < len(b.chunks[0]) {
		b.chunks[0] = b.chunks[0][n:]
		b.partial = true
	} else {
		b.chunks = b.chunks[1:]
		b.partial = false
	}
	return n
}

func (b *NullBackend) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.out.Write(p)
}

// Output returns everything written so far.
func (b *NullBackend) Output() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.out.String()
}

// ResetOutput discards captured output.
func (b *NullBackend) ResetOutput() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.out.Reset()
}

// Initialized reports whether Init has been called.
func (b *NullBackend) Initialized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.initialized
}

// IsShutdown reports whether Shutdown has been called.
func (b *NullBackend) IsShutdown() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.shutdown
}

// ScreenSize clamps a queried terminal size, falling back to the default
// dimensions when the query failed or reported zero columns.
func ScreenSize(width, height int, err error) (int, int) {
	if err != nil || width <= 0 {
		return DefaultWidth, DefaultHeight
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}
