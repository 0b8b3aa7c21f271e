// Package viewport provides viewport management for the renderer.
//
// A Viewport tracks the top-left document cell shown on screen and scrolls
// only as much as needed to keep the cursor visible.
package viewport

// StatusRows is the number of screen rows reserved below the text area.
const StatusRows = 1

// Viewport represents the visible portion of the buffer.
type Viewport struct {
	// RowOffset is the first visible buffer line.
	RowOffset int
	// ColOffset is the first visible byte column.
	ColOffset int
}

// TextRows returns the number of screen rows available for text.
// It never returns less than 1.
func TextRows(screenRows int) int {
	if n := screenRows - StatusRows; n > 0 {
		return n
	}
	return 1
}

// Scroll updates the offsets so that (row, col) is visible on a screen of
// screenRows x textCols, where the last screen row is reserved for the
// status line and textCols is the width available for text.
// Offsets do not move while the cursor is already in view.
func (v *Viewport) Scroll(row, col, screenRows, textCols int) {
	if textCols < 1 {
		textCols = 1
	}
	if v.IsVisible(row, col, screenRows, textCols) {
		return
	}
	textRows := TextRows(screenRows)

	if row < v.RowOffset {
		v.RowOffset = row
	}
	if row >= v.RowOffset+textRows {
		v.RowOffset = row - textRows + 1
	}

	if col < v.ColOffset {
		v.ColOffset = col
	}
	if col >= v.ColOffset+textCols {
		v.ColOffset = col - textCols + 1
	}
}

// Recompute returns the viewport after scrolling v to (row, col).
// It is the pure form of Scroll.
func Recompute(v Viewport, row, col, screenRows, textCols int) Viewport {
	v.Scroll(row, col, screenRows, textCols)
	return v
}

// IsVisible reports whether (row, col) lies inside the viewport.
func (v Viewport) IsVisible(row, col, screenRows, textCols int) bool {
	return row >= v.RowOffset && row < v.RowOffset+TextRows(screenRows) &&
		col >= v.ColOffset && col < v.ColOffset+textCols
}

// ScreenPosition returns the zero-based screen cell of (row, col),
// not counting any gutter.
func (v Viewport) ScreenPosition(row, col int) (y, x int) {
	return row - v.RowOffset, col - v.ColOffset
}
