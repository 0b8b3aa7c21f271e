// Package key decodes raw terminal input into key events.
//
// The package defines the event type delivered to the editor loop:
//
//   - Literal: a plain byte typed by the user (printable ASCII or high bytes)
//   - Control: a control code (0-31 and DEL), including a bare ESC
//   - Nav: a navigation key decoded from an ANSI escape sequence
//   - Unknown: an escape sequence that is not recognized
//   - EndOfInput: the input source failed or reached EOF
//
// # Escape Sequences
//
// After an ESC byte the Decoder performs exactly one additional read of up
// to five bytes and classifies whatever arrived:
//
//	ESC [ A/B/C/D   Up/Down/Right/Left
//	ESC [ H / F     Home / End
//	ESC [ 1 ~       Home
//	ESC [ 4 ~       End
//	ESC [ 1 ; 5 H   Ctrl+Home
//	ESC [ 1 ; 5 F   Ctrl+End
//
// A sequence split across reads is classified by the bytes of the first
// read only.
//
// # Key Specifications
//
// Parse turns a textual key specification ("Ctrl+S", "<C-q>", "Enter",
// "Ctrl+Home") into the Event the decoder would produce for it. This is
// what configurable bindings are written in.
package key
