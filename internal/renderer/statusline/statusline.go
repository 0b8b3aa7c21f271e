// Package statusline provides the status bar drawn on the last screen row.
package statusline

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dshills/med/internal/renderer/core"
)

// StatusLine renders the bottom status bar.
//
// The left side shows the file name and save state (followed by a transient message);
// the right side shows "row,col [percent%]" anchored to the last column.
type StatusLine struct {
	filename   string
	saved      bool
	line       int // 1-indexed
	col        int // 1-indexed
	totalLines int
	message    string
	style      core.Style
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		line:       1,
		col:        1,
		totalLines: 1,
		style:      core.StyleStatusBar,
	}
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetSaved updates the save indicator.
func (s *StatusLine) SetSaved(saved bool) {
	s.saved = saved
}

// SetPosition updates the cursor position (1-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetMessage displays a message after the file state.
func (s *StatusLine) SetMessage(msg string) {
	s.message = msg
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
}

// Message returns the current status message.
func (s *StatusLine) Message() string {
	return s.message
}

// SetStyle sets the bar style.
func (s *StatusLine) SetStyle(style core.Style) {
	s.style = style
}

// Percent returns round(100 * line / total) for a 1-indexed line.
// Halves round away from zero. A non-positive total yields 100.
func Percent(line, total int) int {
	if total <= 0 {
		return 100
	}
	return int(math.Round(100 * float64(line) / float64(total)))
}

// Left returns the left-aligned text: the file name and its saved state,
// followed by the message when one is set.
func (s *StatusLine) Left() string {
	state := " (not saved)"
	if s.saved {
		state = " (saved)"
	}
	if s.message != "" {
		return s.filename + state + " - " + s.message
	}
	return s.filename + state
}

// Right returns the right-aligned position text.
func (s *StatusLine) Right() string {
	return strconv.Itoa(s.line) + "," + strconv.Itoa(s.col) +
		" [" + strconv.Itoa(Percent(s.line, s.totalLines)) + "%]"
}

// RightStart returns the 1-based column at which the right text begins so
// that its last character lands in the last column.
func RightStart(cols int, right string) int {
	return max(1, cols-len(right)+1)
}

// Render writes the status bar onto screen row (1-based) of a screen cols wide.
func (s *StatusLine) Render(w io.StringWriter, row, cols int) {
	cols = max(cols, 1)
	left := truncate(s.Left(), cols)
	right := truncate(s.Right(), cols)

	w.WriteString(core.MoveTo(row, 1))
	w.WriteString(string(s.style))
	w.WriteString(strings.Repeat(" ", cols))
	w.WriteString(core.MoveTo(row, 1))
	w.WriteString(left)
	w.WriteString(core.MoveTo(row, RightStart(cols, right)))
	w.WriteString(right)
	w.WriteString(core.Reset)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
