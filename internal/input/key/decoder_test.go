package key

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// chunkReader returns one chunk per Read call, then io.EOF.
type chunkReader struct {
	chunks [][]byte
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	c := r.chunks[0]
	n := copy(p, c)
	if n < len(c) {
		r.chunks[0] = c[n:]
	} else {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

// pendingReader records whether ReadPending was used for the tail.
type pendingReader struct {
	chunkReader
	pendingCalls int
}

func (r *pendingReader) ReadPending(p []byte) (int, error) {
	r.pendingCalls++
	return r.Read(p)
}

func keys(chunks ...string) *chunkReader {
	r := &chunkReader{}
	for _, c := range chunks {
		r.chunks = append(r.chunks, []byte(c))
	}
	return r
}

func TestDecoderLiteralAndControl(t *testing.T) {
	tests := []struct {
		name string
		in   byte
		want Event
	}{
		{"upper A", 'A', Event{Kind: Literal, Byte: 'A'}},
		{"space", ' ', Event{Kind: Literal, Byte: ' '}},
		{"tilde", '~', Event{Kind: Literal, Byte: '~'}},
		{"ctrl-s", 0x13, Event{Kind: Control, Byte: 0x13}},
		{"enter", '\r', Event{Kind: Control, Byte: '\r'}},
		{"newline", '\n', Event{Kind: Control, Byte: '\n'}},
		{"del", 0x7f, Event{Kind: Control, Byte: 0x7f}},
		{"nul", 0x00, Event{Kind: Control, Byte: 0x00}},
		{"high byte", 0xc3, Event{Kind: Literal, Byte: 0xc3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(keys(string([]byte{tt.in})))
			got := d.ReadKey()
			if got != tt.want {
				t.Errorf("ReadKey() = %+v, want %+v", got, tt.want)
			}
			if got.Escape {
				t.Error("literal input must not carry the escape flag")
			}
		})
	}
}

func TestDecoderEscapeSequences(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want Event
	}{
		{"up", "\x1b[A", NavEvent(NavUp)},
		{"down", "\x1b[B", NavEvent(NavDown)},
		{"right", "\x1b[C", NavEvent(NavRight)},
		{"left", "\x1b[D", NavEvent(NavLeft)},
		{"home H", "\x1b[H", NavEvent(NavHome)},
		{"end F", "\x1b[F", NavEvent(NavEnd)},
		{"home tilde", "\x1b[1~", NavEvent(NavHome)},
		{"end tilde", "\x1b[4~", NavEvent(NavEnd)},
		{"ctrl home", "\x1b[1;5H", NavEvent(NavCtrlHome)},
		{"ctrl end", "\x1b[1;5F", NavEvent(NavCtrlEnd)},
		{"unknown two byte", "\x1b[Z", UnknownEvent()},
		{"non bracket", "\x1bOA", UnknownEvent()},
		{"delete key", "\x1b[3~", UnknownEvent()},
		{"unknown five byte", "\x1b[1;2A", UnknownEvent()},
		{"single tail byte", "\x1bx", UnknownEvent()},
		{"four tail bytes", "\x1b[15~", UnknownEvent()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(keys(tt.seq))
			got := d.ReadKey()
			if got != tt.want {
				t.Errorf("ReadKey(%q) = %+v, want %+v", tt.seq, got, tt.want)
			}
			if !got.Escape {
				t.Errorf("ReadKey(%q) should carry the escape flag", tt.seq)
			}
		})
	}
}

func TestDecoderUpVersusLiteral(t *testing.T) {
	d := NewDecoder(keys("\x1b[A", "A"))

	up := d.ReadKey()
	if up.Kind != Nav || up.Nav != NavUp || !up.Escape {
		t.Fatalf("expected Up with escape flag, got %+v", up)
	}

	lit := d.ReadKey()
	if lit.Kind != Literal || lit.Byte != 'A' || lit.Escape {
		t.Fatalf("expected literal 'A' without escape flag, got %+v", lit)
	}
}

func TestDecoderBareEscape(t *testing.T) {
	d := NewDecoder(keys("\x1b"))
	got := d.ReadKey()
	if got != ControlEvent(CodeEscape) {
		t.Fatalf("expected bare ESC, got %+v", got)
	}
	if !got.Escape {
		t.Error("bare ESC should carry the escape flag")
	}
}

func TestDecoderSplitSequenceIsNotReassembled(t *testing.T) {
	// ESC arrives with only "[" in the next read; the trailing "A" is a
	// separate literal.
	d := NewDecoder(keys("\x1b", "[", "A"))

	first := d.ReadKey()
	if first != UnknownEvent() {
		t.Fatalf("expected unknown escape for short tail, got %+v", first)
	}
	second := d.ReadKey()
	if second != LiteralEvent('A') {
		t.Fatalf("expected literal 'A', got %+v", second)
	}
}

func TestDecoderTailReadsAtMostFiveBytes(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte("\x1b[1;5Hxy")))

	if got := d.ReadKey(); got != NavEvent(NavCtrlHome) {
		t.Fatalf("expected Ctrl+Home, got %+v", got)
	}
	if got := d.ReadKey(); got != LiteralEvent('x') {
		t.Fatalf("expected 'x', got %+v", got)
	}
}

func TestDecoderUsesPendingReader(t *testing.T) {
	r := &pendingReader{chunkReader: *keys("\x1b", "[B")}
	d := NewDecoder(r)

	if got := d.ReadKey(); got != NavEvent(NavDown) {
		t.Fatalf("expected Down, got %+v", got)
	}
	if r.pendingCalls != 1 {
		t.Errorf("expected 1 pending read, got %d", r.pendingCalls)
	}
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestDecoderEndOfInput(t *testing.T) {
	for _, r := range []io.Reader{
		keys(),
		errReader{err: errors.New("boom")},
	} {
		d := NewDecoder(r)
		got := d.ReadKey()
		if got.Kind != EndOfInput {
			t.Errorf("expected EndOfInput, got %+v", got)
		}
		if got.Escape {
			t.Error("EndOfInput must not carry the escape flag")
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		want Event
	}{
		{"", Event{Kind: EndOfInput}},
		{"q", LiteralEvent('q')},
		{"\x11", ControlEvent(0x11)},
		{"\x1b", ControlEvent(CodeEscape)},
		{"\x1b[D", NavEvent(NavLeft)},
		{"\x1b[1;5Fzz", NavEvent(NavCtrlEnd)},
	}

	for _, tt := range tests {
		if got := Decode([]byte(tt.in)); got != tt.want {
			t.Errorf("Decode(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
