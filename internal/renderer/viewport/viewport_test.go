package viewport

import (
	"math/rand"
	"testing"
)

func TestScrollDownRevealsCursor(t *testing.T) {
	// 5 screen rows: 4 text rows plus the status line.
	var v Viewport
	v.Scroll(10, 0, 5, 80)

	if v.RowOffset != 7 {
		t.Errorf("expected row offset 10-4+1 = 7, got %d", v.RowOffset)
	}
}

func TestScrollUpRevealsCursor(t *testing.T) {
	v := Viewport{RowOffset: 20}
	v.Scroll(3, 0, 24, 80)

	if v.RowOffset != 3 {
		t.Errorf("expected row offset 3, got %d", v.RowOffset)
	}
}

func TestScrollHorizontal(t *testing.T) {
	var v Viewport
	v.Scroll(0, 100, 24, 80)
	if v.ColOffset != 21 {
		t.Errorf("expected col offset 100-80+1 = 21, got %d", v.ColOffset)
	}

	v.Scroll(0, 5, 24, 80)
	if v.ColOffset != 5 {
		t.Errorf("expected col offset 5, got %d", v.ColOffset)
	}
}

func TestScrollDoesNotMoveWhenVisible(t *testing.T) {
	v := Viewport{RowOffset: 10, ColOffset: 4}
	v.Scroll(12, 30, 24, 80)

	if v.RowOffset != 10 || v.ColOffset != 4 {
		t.Errorf("viewport moved to %+v while cursor was visible", v)
	}
}

func TestScrollDegenerateScreen(t *testing.T) {
	var v Viewport
	v.Scroll(3, 2, 1, 0)

	if v.RowOffset != 3 || v.ColOffset != 2 {
		t.Errorf("expected single-cell viewport at cursor, got %+v", v)
	}
}

func TestRecomputeIsPure(t *testing.T) {
	v := Viewport{RowOffset: 1}
	got := Recompute(v, 50, 0, 10, 80)

	if v.RowOffset != 1 {
		t.Error("Recompute must not modify its input")
	}
	if got.RowOffset != 42 {
		t.Errorf("expected row offset 42, got %d", got.RowOffset)
	}
}

func TestCursorAlwaysVisibleAfterScroll(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var v Viewport

	for i := 0; i < 2000; i++ {
		rows := 2 + rng.Intn(40)
		cols := 1 + rng.Intn(120)
		row := rng.Intn(500)
		col := rng.Intn(300)

		before := v
		v.Scroll(row, col, rows, cols)

		if !v.IsVisible(row, col, rows, cols) {
			t.Fatalf("cursor (%d,%d) not visible in %+v on %dx%d", row, col, v, rows, cols)
		}
		if before.IsVisible(row, col, rows, cols) && before != v {
			t.Fatalf("viewport moved from %+v to %+v although cursor was visible", before, v)
		}
	}
}

func TestScreenPosition(t *testing.T) {
	v := Viewport{RowOffset: 7, ColOffset: 3}
	y, x := v.ScreenPosition(10, 5)
	if y != 3 || x != 2 {
		t.Errorf("ScreenPosition = (%d,%d), want (3,2)", y, x)
	}
}

func TestTextRows(t *testing.T) {
	tests := map[int]int{24: 23, 5: 4, 2: 1, 1: 1, 0: 1}
	for rows, want := range tests {
		if got := TextRows(rows); got != want {
			t.Errorf("TextRows(%d) = %d, want %d", rows, got, want)
		}
	}
}
