package buffer

import "strings"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithLineEnding sets the buffer's line ending style.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// DetectLineEnding returns CRLF when every line break in text is a CRLF
// pair, and LF otherwise (including text with no line breaks).
func DetectLineEnding(text string) LineEnding {
	lf := strings.Count(text, "\n")
	if lf == 0 {
		return LineEndingLF
	}
	if strings.Count(text, "\r\n") == lf {
		return LineEndingCRLF
	}
	return LineEndingLF
}
