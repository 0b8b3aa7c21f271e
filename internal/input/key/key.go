package key

import "fmt"

// Kind identifies the variant of an Event.
type Kind uint8

const (
	// EndOfInput is produced when reading the input fails or hits EOF.
	EndOfInput Kind = iota
	// Literal is a plain, non-control byte.
	Literal
	// Control is a control code (0-31 or DEL).
	Control
	// Nav is a navigation key decoded from an escape sequence.
	Nav
	// Unknown is an escape sequence the decoder does not recognize.
	Unknown
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case EndOfInput:
		return "EndOfInput"
	case Literal:
		return "Literal"
	case Control:
		return "Control"
	case Nav:
		return "Nav"
	case Unknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// NavKey identifies a navigation key.
type NavKey uint8

const (
	NavNone NavKey = iota
	NavUp
	NavDown
	NavLeft
	NavRight
	NavHome
	NavEnd
	NavCtrlHome
	NavCtrlEnd
)

var navNames = map[NavKey]string{
	NavUp:       "Up",
	NavDown:     "Down",
	NavLeft:     "Left",
	NavRight:    "Right",
	NavHome:     "Home",
	NavEnd:      "End",
	NavCtrlHome: "Ctrl+Home",
	NavCtrlEnd:  "Ctrl+End",
}

// String returns the human-readable key name.
func (n NavKey) String() string {
	if name, ok := navNames[n]; ok {
		return name
	}
	return "None"
}

// Control codes with names.
const (
	CodeBackspace byte = 0x08
	CodeTab       byte = 0x09
	CodeLineFeed  byte = 0x0a
	CodeEnter     byte = 0x0d
	CodeEscape    byte = 0x1b
	CodeDelete    byte = 0x7f
)

// CtrlCode returns the control code produced by Ctrl plus the given letter.
func CtrlCode(letter byte) byte {
	return letter & 0x1f
}

// Event is a single decoded key press.
//
// Only the field matching Kind is meaningful: Byte for Literal and Control,
// Nav for Nav. Events are comparable and can be used as map keys.
type Event struct {
	Kind Kind
	Byte byte
	Nav  NavKey

	// Escape is set for every event derived from an ESC byte, including a
	// bare ESC and unrecognized sequences.
	Escape bool
}

// LiteralEvent returns the event for a plain byte.
func LiteralEvent(b byte) Event {
	return Event{Kind: Literal, Byte: b}
}

// ControlEvent returns the event for a control code.
func ControlEvent(code byte) Event {
	return Event{Kind: Control, Byte: code, Escape: code == CodeEscape}
}

// NavEvent returns the event for a navigation key.
func NavEvent(n NavKey) Event {
	return Event{Kind: Nav, Nav: n, Escape: true}
}

// UnknownEvent returns the event for an unrecognized escape sequence.
func UnknownEvent() Event {
	return Event{Kind: Unknown, Escape: true}
}

// IsPrintable reports whether the event is a printable ASCII byte (32-126).
func (e Event) IsPrintable() bool {
	return e.Kind == Literal && e.Byte >= 0x20 && e.Byte <= 0x7e
}

// IsControl reports whether the event is the given control code.
func (e Event) IsControl(code byte) bool {
	return e.Kind == Control && e.Byte == code
}

// IsEnter reports whether the event is Enter (CR or LF).
func (e Event) IsEnter() bool {
	return e.IsControl(CodeEnter) || e.IsControl(CodeLineFeed)
}

// IsBackspace reports whether the event is Backspace (DEL or BS).
func (e Event) IsBackspace() bool {
	return e.IsControl(CodeDelete) || e.IsControl(CodeBackspace)
}

// String returns a readable representation, e.g. "Ctrl+S", "Up" or "'a'".
func (e Event) String() string {
	switch e.Kind {
	case EndOfInput:
		return "EOF"
	case Literal:
		if e.IsPrintable() {
			return fmt.Sprintf("%q", rune(e.Byte))
		}
		return fmt.Sprintf("0x%02x", e.Byte)
	case Control:
		switch e.Byte {
		case CodeEscape:
			return "Escape"
		case CodeEnter:
			return "Enter"
		case CodeTab:
			return "Tab"
		case CodeDelete:
			return "Backspace"
		case 0:
			return "Ctrl+@"
		}
		if e.Byte < 0x20 {
			return "Ctrl+" + string(rune('A'+e.Byte-1))
		}
		return fmt.Sprintf("0x%02x", e.Byte)
	case Nav:
		return e.Nav.String()
	case Unknown:
		return "UnknownEscape"
	default:
		return e.Kind.String()
	}
}
