package cursor

import "fmt"

// Lines exposes the line geometry a cursor moves over.
type Lines interface {
	// LineCount returns the number of lines (at least 1).
	LineCount() int
	// LineLen returns the byte length of a line.
	LineLen(line int) int
}

// Cursor is an insertion point at (Row, Col), both zero-based.
// Cursor is an immutable value type.
type Cursor struct {
	Row int
	Col int
}

// New creates a cursor at the given position without validating it.
func New(row, col int) Cursor {
	return Cursor{Row: row, Col: col}
}

// String returns a human-readable representation.
func (c Cursor) String() string {
	return fmt.Sprintf("(%d:%d)", c.Row, c.Col)
}

// Valid reports whether c satisfies the cursor invariant for l.
func (c Cursor) Valid(l Lines) bool {
	if c.Row < 0 || c.Row >= l.LineCount() {
		return false
	}
	return c.Col >= 0 && c.Col <= l.LineLen(c.Row)
}

// Clamp returns c moved to the nearest valid position in l.
func (c Cursor) Clamp(l Lines) Cursor {
	last := l.LineCount() - 1
	if last < 0 {
		return Cursor{}
	}
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row > last {
		c.Row = last
	}
	return c.ClampCol(l)
}

// ClampCol returns c with its column clamped to its current line.
// The row is assumed valid.
func (c Cursor) ClampCol(l Lines) Cursor {
	if n := l.LineLen(c.Row); c.Col > n {
		c.Col = n
	}
	if c.Col < 0 {
		c.Col = 0
	}
	return c
}

// Up moves one line up, clamping the column to the new line.
func (c Cursor) Up(l Lines) Cursor {
	if c.Row > 0 {
		c.Row--
	}
	return c.ClampCol(l)
}

// Down moves one line down, clamping the column to the new line.
func (c Cursor) Down(l Lines) Cursor {
	if c.Row < l.LineCount()-1 {
		c.Row++
	}
	return c.ClampCol(l)
}

// Left moves one byte left. It does not wrap to the previous line.
func (c Cursor) Left() Cursor {
	if c.Col > 0 {
		c.Col--
	}
	return c
}

// Right moves one byte right. It does not wrap to the next line.
func (c Cursor) Right(l Lines) Cursor {
	if c.Col < l.LineLen(c.Row) {
		c.Col++
	}
	return c
}

// Home moves to the start of the line.
func (c Cursor) Home() Cursor {
	c.Col = 0
	return c
}

// LineEnd moves past the last byte of the line.
func (c Cursor) LineEnd(l Lines) Cursor {
	c.Col = l.LineLen(c.Row)
	return c
}

// DocStart returns the cursor at the start of the document.
func DocStart() Cursor {
	return Cursor{}
}

// DocEnd returns the cursor after the last byte of the last line.
func DocEnd(l Lines) Cursor {
	last := l.LineCount() - 1
	if last < 0 {
		return Cursor{}
	}
	return Cursor{Row: last, Col: l.LineLen(last)}
}
