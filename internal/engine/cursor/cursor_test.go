package cursor

import "testing"

// lines is a minimal Lines implementation for tests.
type lines []string

func (l lines) LineCount() int      { return len(l) }
func (l lines) LineLen(line int) int { return len(l[line]) }

func TestCursorClamp(t *testing.T) {
	doc := lines{"hello", "hi", ""}

	tests := []struct {
		name string
		in   Cursor
		want Cursor
	}{
		{"valid", New(0, 3), New(0, 3)},
		{"end of line", New(0, 5), New(0, 5)},
		{"col past end", New(1, 9), New(1, 2)},
		{"negative col", New(1, -1), New(1, 0)},
		{"row past end", New(7, 4), New(2, 0)},
		{"negative row", New(-3, 2), New(0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp(doc)
			if got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if !got.Valid(doc) {
				t.Errorf("Clamp result %v is not valid", got)
			}
		})
	}
}

func TestCursorVerticalMotionClampsColumn(t *testing.T) {
	doc := lines{"a long line", "ab", "another long one"}

	c := New(0, 10)
	c = c.Down(doc)
	if c != New(1, 2) {
		t.Fatalf("Down should clamp column to 2, got %v", c)
	}

	// The column does not spring back when moving to a longer line.
	c = c.Down(doc)
	if c != New(2, 2) {
		t.Fatalf("expected (2:2), got %v", c)
	}

	c = New(2, 15).Up(doc)
	if c != New(1, 2) {
		t.Fatalf("Up should clamp column to 2, got %v", c)
	}
}

func TestCursorVerticalBounds(t *testing.T) {
	doc := lines{"abc", "def"}

	if c := New(0, 1).Up(doc); c != New(0, 1) {
		t.Errorf("Up at first line should be a no-op, got %v", c)
	}
	if c := New(1, 1).Down(doc); c != New(1, 1) {
		t.Errorf("Down at last line should be a no-op, got %v", c)
	}
}

func TestCursorHorizontal(t *testing.T) {
	doc := lines{"abc", "def"}

	if c := New(1, 0).Left(); c != New(1, 0) {
		t.Errorf("Left at column 0 should not wrap, got %v", c)
	}
	if c := New(0, 3).Right(doc); c != New(0, 3) {
		t.Errorf("Right at end should not wrap, got %v", c)
	}
	if c := New(0, 1).Right(doc); c != New(0, 2) {
		t.Errorf("Right: got %v", c)
	}
	if c := New(0, 2).Left(); c != New(0, 1) {
		t.Errorf("Left: got %v", c)
	}
}

func TestCursorLineAndDocumentJumps(t *testing.T) {
	doc := lines{"first", "second line", "end"}

	if c := New(1, 4).Home(); c != New(1, 0) {
		t.Errorf("Home: got %v", c)
	}
	if c := New(1, 4).LineEnd(doc); c != New(1, 11) {
		t.Errorf("LineEnd: got %v", c)
	}
	if c := DocStart(); c != New(0, 0) {
		t.Errorf("DocStart: got %v", c)
	}
	if c := DocEnd(doc); c != New(2, 3) {
		t.Errorf("DocEnd: got %v", c)
	}
}

func TestDocEndSingleEmptyLine(t *testing.T) {
	if c := DocEnd(lines{""}); c != New(0, 0) {
		t.Errorf("DocEnd on an empty document should be (0:0), got %v", c)
	}
}

func TestCursorString(t *testing.T) {
	if s := New(3, 7).String(); s != "(3:7)" {
		t.Errorf("String() = %q", s)
	}
}
