package key

import "io"

// maxEscapeTail is the number of bytes read after ESC in one call.
const maxEscapeTail = 5

// PendingReader is implemented by input sources that can read bytes which
// are already queued without blocking indefinitely. The decoder uses it for
// the tail of an escape sequence so a bare ESC is reported promptly.
type PendingReader interface {
	ReadPending(p []byte) (int, error)
}

// Decoder reads raw bytes from a source and turns them into key events.
type Decoder struct {
	r    io.Reader
	head [1]byte
	tail [maxEscapeTail]byte
}

// NewDecoder creates a decoder over r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey blocks until a key is available and returns it.
// A failed read or EOF yields an EndOfInput event.
func (d *Decoder) ReadKey() Event {
	if n, _ := d.r.Read(d.head[:]); n != 1 {
		return Event{Kind: EndOfInput}
	}

	c := d.head[0]
	if c != CodeEscape {
		return classifyByte(c)
	}
	return classifyEscape(d.tail[:d.readTail()])
}

// readTail performs the single tail read after ESC.
func (d *Decoder) readTail() int {
	var n int
	if pr, ok := d.r.(PendingReader); ok {
		n, _ = pr.ReadPending(d.tail[:])
	} else {
		n, _ = d.r.Read(d.tail[:])
	}
	// Bytes delivered alongside an error still count.
	if n < 0 {
		return 0
	}
	return n
}

// classifyByte maps a non-ESC byte to a Literal or Control event.
func classifyByte(c byte) Event {
	if c < 0x20 || c == CodeDelete {
		return ControlEvent(c)
	}
	return LiteralEvent(c)
}

// classifyEscape maps the bytes captured after ESC to an event.
func classifyEscape(seq []byte) Event {
	switch len(seq) {
	case 0:
		return ControlEvent(CodeEscape)
	case 2:
		if seq[0] != '[' {
			return UnknownEvent()
		}
		switch seq[1] {
		case 'A':
			return NavEvent(NavUp)
		case 'B':
			return NavEvent(NavDown)
		case 'C':
			return NavEvent(NavRight)
		case 'D':
			return NavEvent(NavLeft)
		case 'H':
			return NavEvent(NavHome)
		case 'F':
			return NavEvent(NavEnd)
		}
	case 3:
		switch string(seq) {
		case "[1~":
			return NavEvent(NavHome)
		case "[4~":
			return NavEvent(NavEnd)
		}
	case 5:
		switch string(seq) {
		case "[1;5H":
			return NavEvent(NavCtrlHome)
		case "[1;5F":
			return NavEvent(NavCtrlEnd)
		}
	}
	return UnknownEvent()
}

// Decode classifies a complete chunk of input as a single key, the same way
// ReadKey would if the chunk arrived in one read after its first byte.
// An empty chunk yields EndOfInput.
func Decode(chunk []byte) Event {
	if len(chunk) == 0 {
		return Event{Kind: EndOfInput}
	}
	if chunk[0] != CodeEscape {
		return classifyByte(chunk[0])
	}
	tail := chunk[1:]
	if len(tail) > maxEscapeTail {
		tail = tail[:maxEscapeTail]
	}
	return classifyEscape(tail)
}
