package core

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Output sequences.
const (
	CursorHome    = termenv.CSI + "H"
	ClearScreen   = termenv.CSI + "J"
	ClearLine     = termenv.CSI + "K"
	HideCursor    = termenv.CSI + termenv.HideCursorSeq
	ShowCursor    = termenv.CSI + termenv.ShowCursorSeq
	AltScreen     = termenv.CSI + termenv.AltScreenSeq
	ExitAltScreen = termenv.CSI + termenv.ExitAltScreenSeq
	Reset         = termenv.CSI + termenv.ResetSeq + "m"
	NewLine       = "\r\n"
)

// MoveTo returns the sequence placing the cursor at the 1-based (row, col).
func MoveTo(row, col int) string {
	return fmt.Sprintf(termenv.CSI+termenv.CursorPositionSeq, row, col)
}

// SGR wraps SGR parameters into a select-graphic-rendition sequence.
// SGR("30;47") returns "\x1b[30;47m".
func SGR(params string) string {
	return termenv.CSI + params + "m"
}
