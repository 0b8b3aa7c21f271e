// Package engine provides the editing model for med.
//
// An Engine combines a line buffer, a cursor and a modified flag and
// exposes the single-keystroke edits the editor performs:
//
//   - InsertChar: insert a printable byte at the cursor
//   - SplitLine: break the line at the cursor (Enter)
//   - DeleteBackward: delete before the cursor, merging lines at column 0
//   - Move*: cursor motion clamped to the document
//
// # Invariants
//
// After every operation the cursor satisfies 0 <= Row < LineCount and
// 0 <= Col <= LineLen(Row), and the buffer holds at least one line.
// Out-of-range requests are silently ignored; no operation returns an error.
//
// SplitLine and DeleteBackward are exact inverses: splitting at (r, c) and
// deleting backward from (r+1, 0) restores the original line and cursor.
// The same holds for InsertChar followed by DeleteBackward.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("hello"))
//	e.MoveLineEnd()
//	e.InsertChar('!')  // "hello!"
//	e.SplitLine()      // "hello!", ""
//	e.DeleteBackward() // "hello!"
//
// The engine is not safe for concurrent use; the editor drives it from a
// single goroutine.
package engine
