// Package cursor provides the editing cursor and its motions.
//
// A Cursor is an immutable (row, column) value. Every motion takes the
// document's line lengths through the Lines interface and returns a new
// cursor that satisfies the cursor invariant:
//
//	0 <= Row < LineCount
//	0 <= Col <= LineLen(Row)
//
// Col may equal the line length, meaning "after the last byte". Vertical
// motions re-clamp the column to the destination line immediately, so a
// cursor returned by this package can always be rendered as-is.
package cursor
