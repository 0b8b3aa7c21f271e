package buffer

import (
	"bufio"
	"io"
	"strings"
)

// LineEnding specifies the line ending style used when saving.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "CRLF"
	default:
		return "LF"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	default:
		return "\n"
	}
}

// Buffer holds the lines of a document.
// It is not safe for concurrent use.
type Buffer struct {
	lines      [][]byte
	lineEnding LineEnding
}

// NewBuffer creates a buffer holding a single empty line.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      [][]byte{{}},
		lineEnding: LineEndingLF,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromLines creates a buffer from the given lines.
// The lines are copied. An empty slice yields a single empty line.
func NewBufferFromLines(lines []string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	if len(lines) == 0 {
		return b
	}
	b.lines = make([][]byte, len(lines))
	for i, l := range lines {
		b.lines[i] = []byte(l)
	}
	return b
}

// NewBufferFromString creates a buffer by splitting s into lines.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	lines, le := splitLines(s)
	b := NewBufferFromLines(lines, append([]Option{WithLineEnding(le)}, opts...)...)
	return b
}

// Read creates a buffer from r, detecting the line ending style.
func Read(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferFromString(string(data), opts...), nil
}

// splitLines splits text into lines the way a line-oriented reader does:
// a trailing line ending does not produce an extra empty line.
func splitLines(s string) ([]string, LineEnding) {
	le := DetectLineEnding(s)
	if s == "" {
		return nil, le
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	if le == LineEndingCRLF {
		for i, l := range lines {
			lines[i] = strings.TrimSuffix(l, "\r")
		}
	}
	return lines, le
}

// WriteTo writes every line followed by the buffer's line ending.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	eol := b.lineEnding.Sequence()
	var total int64
	for _, l := range b.lines {
		n, err := bw.Write(l)
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = bw.WriteString(eol)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// Text returns the full content as it would be written to disk.
func (b *Buffer) Text() string {
	var sb strings.Builder
	_, _ = b.WriteTo(&sb)
	return sb.String()
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineText returns the text of a line, or "" if line is out of range.
func (b *Buffer) LineText(line int) string {
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return string(b.lines[line])
}

// LineLen returns the byte length of a line, or 0 if line is out of range.
func (b *Buffer) LineLen(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// LineEnding returns the line ending used by WriteTo.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// Edit Operations

// InsertByte inserts c into line at col. col is clamped to the line.
// Returns false if line is out of range.
func (b *Buffer) InsertByte(line, col int, c byte) bool {
	if line < 0 || line >= len(b.lines) {
		return false
	}
	l := b.lines[line]
	col = clamp(col, 0, len(l))
	l = append(l, 0)
	copy(l[col+1:], l[col:])
	l[col] = c
	b.lines[line] = l
	return true
}

// DeleteByte removes the byte at col in line.
// Returns false if there is no such byte.
func (b *Buffer) DeleteByte(line, col int) bool {
	if line < 0 || line >= len(b.lines) {
		return false
	}
	l := b.lines[line]
	if col < 0 || col >= len(l) {
		return false
	}
	b.lines[line] = append(l[:col], l[col+1:]...)
	return true
}

// SplitLine moves the suffix of line starting at col into a new line
// inserted right after it. col is clamped to the line.
func (b *Buffer) SplitLine(line, col int) bool {
	if line < 0 || line >= len(b.lines) {
		return false
	}
	l := b.lines[line]
	col = clamp(col, 0, len(l))

	suffix := make([]byte, len(l)-col)
	copy(suffix, l[col:])
	b.lines[line] = l[:col:col]

	b.lines = append(b.lines, nil)
	copy(b.lines[line+2:], b.lines[line+1:])
	b.lines[line+1] = suffix
	return true
}

// JoinLine appends line to the end of line-1 and removes line.
// Returns the length of line-1 before the join, or -1 if line has no
// predecessor.
func (b *Buffer) JoinLine(line int) int {
	if line <= 0 || line >= len(b.lines) {
		return -1
	}
	prev := b.lines[line-1]
	at := len(prev)
	b.lines[line-1] = append(prev, b.lines[line]...)
	b.lines = append(b.lines[:line], b.lines[line+1:]...)
	return at
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
