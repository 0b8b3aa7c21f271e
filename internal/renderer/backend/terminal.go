//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package backend

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/dshills/med/internal/renderer/core"
)

// DefaultEscapeTimeout bounds the wait for the bytes following ESC.
const DefaultEscapeTimeout = 25 * time.Millisecond

// RawMode is an active raw-mode session on a terminal. Restore returns the
// terminal to the mode captured when the session began.
type RawMode struct {
	fd    int
	saved unix.Termios
	once  sync.Once
	err   error
}

// EnterRawMode switches the terminal on fd into raw mode.
func EnterRawMode(fd int) (*RawMode, error) {
	saved, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("get terminal mode: %w", err)
	}

	raw := MakeRaw(*saved)
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return nil, fmt.Errorf("set raw mode: %w", err)
	}
	return &RawMode{fd: fd, saved: *saved}, nil
}

// Restore reverts the terminal mode. Only the first call has an effect.
func (r *RawMode) Restore() error {
	r.once.Do(func() {
		r.err = unix.IoctlSetTermios(r.fd, ioctlSetTermios, &r.saved)
	})
	return r.err
}

// MakeRaw returns t with canonical input, echo and XON/XOFF flow control
// disabled and reads returning after a single byte with no timeout.
// Signal generation and output processing are left untouched.
func MakeRaw(t unix.Termios) unix.Termios {
	t.Lflag &^= unix.ICANON | unix.ECHO
	t.Iflag &^= unix.IXON
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return t
}

// Terminal implements Backend on a Unix terminal device.
type Terminal struct {
	in            *os.File
	out           *os.File
	escapeTimeout time.Duration

	mu        sync.Mutex
	raw       *RawMode
	altScreen bool
	closed    bool
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithEscapeTimeout sets how long ReadPending waits for input.
func WithEscapeTimeout(d time.Duration) TerminalOption {
	return func(t *Terminal) {
		if d >= 0 {
			t.escapeTimeout = d
		}
	}
}

// NewTerminal creates a terminal backend reading from in and writing to out.
func NewTerminal(in, out *os.File, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		in:            in,
		out:           out,
		escapeTimeout: DefaultEscapeTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IsTerminal reports whether both input and output are terminals.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd())) && term.IsTerminal(int(t.out.Fd()))
}

// Init enters raw mode and switches to the alternate screen.
func (t *Terminal) Init() error {
	if !t.IsTerminal() {
		return ErrNotTerminal
	}

	raw, err := EnterRawMode(int(t.in.Fd()))
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.raw = raw
	t.closed = false
	t.mu.Unlock()

	return t.EnterFullScreen()
}

// Shutdown leaves the alternate screen and restores the terminal mode.
// It is safe to call from a signal handler goroutine and more than once.
// Writes after Shutdown are discarded so a frame still being rendered
// cannot land on the primary screen.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()

	_ = t.LeaveFullScreen()

	t.mu.Lock()
	raw := t.raw
	t.mu.Unlock()

	if raw != nil {
		_ = raw.Restore()
	}
}

// EnterFullScreen switches to the alternate screen buffer.
func (t *Terminal) EnterFullScreen() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.altScreen {
		return nil
	}
	if _, err := t.out.WriteString(core.AltScreen); err != nil {
		return err
	}
	t.altScreen = true
	return nil
}

// LeaveFullScreen switches back to the normal screen buffer.
func (t *Terminal) LeaveFullScreen() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.altScreen {
		return nil
	}
	t.altScreen = false
	_, err := t.out.WriteString(core.ShowCursor + core.ExitAltScreen)
	return err
}

// Size returns the terminal dimensions, or 80x24 when they are unknown.
func (t *Terminal) Size() (int, int) {
	return ScreenSize(term.GetSize(int(t.out.Fd())))
}

// Read blocks until at least one byte of input is available.
func (t *Terminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// ReadPending reads input that arrives within the escape timeout.
// It returns 0 and no error when nothing arrived.
func (t *Terminal) ReadPending(p []byte) (int, error) {
	fds := []unix.PollFd{{Fd: int32(t.in.Fd()), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(t.escapeTimeout/time.Millisecond))
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return 0, nil
		}
		return 0, err
	}
	if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		return 0, nil
	}
	return t.in.Read(p)
}

// Write writes directly to the terminal with no buffering. After Shutdown
// it reports success without writing.
func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return len(p), nil
	}
	return t.out.Write(p)
}
