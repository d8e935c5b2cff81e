// Package input decodes raw-mode terminal bytes into key events. In raw
// mode the device delivers plain bytes for ordinary keys and multi-byte
// ESC sequences for navigation keys; the Reader turns both into a single
// Event stream the controller can block on.
package input

import (
	"bufio"
	"io"
)

// Key identifies a decoded key press.
type Key int

const (
	// KeyRune is an ordinary printable or control character; the rune is
	// carried in Event.Rune.
	KeyRune Key = iota
	// KeyEscape is a bare ESC press or an unrecognized escape sequence.
	KeyEscape
	// KeyCtrlQ is the quit combination.
	KeyCtrlQ
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Event is one decoded key press.
type Event struct {
	Key  Key
	Rune rune
}

const ctrlQ = 0x11

// Reader decodes key events from an injected byte stream. Production code
// hands it os.Stdin with the terminal in raw mode; tests hand it a
// bytes.Reader of scripted input.
type Reader struct {
	r *bufio.Reader
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadEvent blocks until the next key press is available and returns it.
// Read errors, including EOF when the stream is exhausted, propagate to
// the caller unchanged.
func (r *Reader) ReadEvent() (Event, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch b {
	case ctrlQ:
		return Event{Key: KeyCtrlQ}, nil
	case 0x1b:
		return r.readEscapeSequence()
	default:
		return Event{Key: KeyRune, Rune: rune(b)}, nil
	}
}

// readEscapeSequence decodes the bytes following an ESC. An incomplete or
// unknown sequence degrades to KeyEscape rather than an error; only the
// underlying stream failing mid-read after a complete prefix is tolerated
// the same way, since the next ReadEvent will surface it.
func (r *Reader) readEscapeSequence() (Event, error) {
	first, err := r.r.ReadByte()
	if err != nil {
		return Event{Key: KeyEscape}, nil
	}

	switch first {
	case '[':
		return r.readCSI()
	case 'O':
		// VT100 keypad variants for Home/End.
		second, err := r.r.ReadByte()
		if err != nil {
			return Event{Key: KeyEscape}, nil
		}
		switch second {
		case 'H':
			return Event{Key: KeyHome}, nil
		case 'F':
			return Event{Key: KeyEnd}, nil
		}
		return Event{Key: KeyEscape}, nil
	default:
		return Event{Key: KeyEscape}, nil
	}
}

func (r *Reader) readCSI() (Event, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return Event{Key: KeyEscape}, nil
	}

	if b >= '0' && b <= '9' {
		// Extended form ESC [ <digit> ~
		tilde, err := r.r.ReadByte()
		if err != nil || tilde != '~' {
			return Event{Key: KeyEscape}, nil
		}
		switch b {
		case '1', '7':
			return Event{Key: KeyHome}, nil
		case '4', '8':
			return Event{Key: KeyEnd}, nil
		case '5':
			return Event{Key: KeyPageUp}, nil
		case '6':
			return Event{Key: KeyPageDown}, nil
		}
		return Event{Key: KeyEscape}, nil
	}

	switch b {
	case 'A':
		return Event{Key: KeyUp}, nil
	case 'B':
		return Event{Key: KeyDown}, nil
	case 'C':
		return Event{Key: KeyRight}, nil
	case 'D':
		return Event{Key: KeyLeft}, nil
	case 'H':
		return Event{Key: KeyHome}, nil
	case 'F':
		return Event{Key: KeyEnd}, nil
	}
	return Event{Key: KeyEscape}, nil
}
