// Package buffer provides the line store behind the editor.
//
// A Buffer is an ordered list of lines held without their line endings.
// It is never empty: an empty document is a single empty line. Columns are
// byte offsets; no Unicode-aware arithmetic is performed.
//
// The package also owns the on-disk format: Read splits text into lines
// (detecting LF or CRLF endings) and WriteTo writes every line followed by
// a single line ending.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("hello\nworld")
//	buf.InsertByte(0, 5, '!')  // "hello!"
//	buf.SplitLine(1, 2)        // "wo", "rld"
//	buf.JoinLine(2)            // "world"
//
// Buffer methods clamp out-of-range positions instead of returning errors;
// callers in the editing model rely on that forgiving contract.
package buffer
