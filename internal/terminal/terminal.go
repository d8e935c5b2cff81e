// Package terminal is the output port for the viewer: the only component
// that writes bytes to the device. Commands are enqueued into a buffer and
// transmitted as a single batch on Flush, so a redraw is never visible as a
// half-drawn frame. The sink is injected at construction time, which lets
// tests capture the exact byte stream instead of touching a real terminal.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	errs "peruse/internal/errors"
	"peruse/internal/util"
)

// Position is an on-screen coordinate pair, zero-based. It is the device
// counterpart of a logical document location; callers translate between the
// two before asking for a cursor move.
type Position struct {
	Col int
	Row int
}

// Size is the terminal viewport measured in character cells.
type Size struct {
	Width  int
	Height int
}

// MaxCoordinate is the largest cursor coordinate the positioning protocol
// is trusted to represent. Anything larger is rejected before transmission
// rather than silently truncated.
const MaxCoordinate = 0xFFFF

// Control sequences used by the port. Only the semantic effect is part of
// the contract; these are the standard CSI forms.
const (
	seqHideCursor  = "\x1b[?25l"
	seqShowCursor  = "\x1b[?25h"
	seqClearScreen = "\x1b[2J"
	seqClearLine   = "\x1b[2K"
)

// SizeFunc reports the current viewport size. It is called fresh before
// every redraw and cursor move; the result must not be cached because the
// device may be resized between calls.
type SizeFunc func() (Size, error)

// Terminal owns the output sink and the raw-mode lifecycle of the device.
type Terminal struct {
	out   *bufio.Writer
	size  SizeFunc
	inFd  int         // stdin descriptor for raw mode, -1 when detached
	saved *term.State // pre-raw state, restored on Terminate
}

// New returns a Terminal bound to the process's standard streams. The
// viewport size is queried from the stdout descriptor on every call.
func New() *Terminal {
	outFd := int(os.Stdout.Fd())
	return &Terminal{
		out:  bufio.NewWriter(os.Stdout),
		size: deviceSize(outFd),
		inFd: int(os.Stdin.Fd()),
	}
}

// NewWithSink returns a Terminal that enqueues into w and reports a fixed
// viewport size. Raw-mode handling is disabled, so Initialize and Terminate
// only manage the buffer. Tests use this with a bytes.Buffer sink.
func NewWithSink(w io.Writer, size Size) *Terminal {
	return &Terminal{
		out:  bufio.NewWriter(w),
		size: func() (Size, error) { return size, nil },
		inFd: -1,
	}
}

func deviceSize(fd int) SizeFunc {
	return func() (Size, error) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			return Size{}, fmt.Errorf("query terminal size: %w", err)
		}
		return Size{Width: width, Height: height}, nil
	}
}

// Initialize puts the device into raw mode, clears the screen, and parks
// the cursor at the origin. Any failure here is fatal to the caller; the
// loop must not start against a half-initialized device.
func (t *Terminal) Initialize() error {
	if t.inFd >= 0 {
		state, err := term.MakeRaw(t.inFd)
		if err != nil {
			return fmt.Errorf("enable raw mode: %w", err)
		}
		t.saved = state
	}
	if err := t.ClearScreen(); err != nil {
		return err
	}
	if err := t.MoveTo(Position{}); err != nil {
		return err
	}
	return t.Flush()
}

// Terminate flushes anything still enqueued and restores the device state
// saved by Initialize. It is safe to call when Initialize failed or was
// never run.
func (t *Terminal) Terminate() error {
	flushErr := t.Flush()
	if t.saved != nil {
		if err := term.Restore(t.inFd, t.saved); err != nil {
			t.saved = nil
			return fmt.Errorf("restore terminal state: %w", err)
		}
		t.saved = nil
	}
	return flushErr
}

// Size reports the current viewport size, queried fresh from the device.
func (t *Terminal) Size() (Size, error) {
	if t.size == nil {
		return Size{}, errs.ErrNoDevice
	}
	return t.size()
}

// HideCursor enqueues a cursor-hide command.
func (t *Terminal) HideCursor() error {
	return t.enqueue(seqHideCursor)
}

// ShowCursor enqueues a cursor-show command.
func (t *Terminal) ShowCursor() error {
	return t.enqueue(seqShowCursor)
}

// ClearScreen enqueues a whole-screen clear.
func (t *Terminal) ClearScreen() error {
	return t.enqueue(seqClearScreen)
}

// ClearLine enqueues a clear of the line the cursor is on.
func (t *Terminal) ClearLine() error {
	return t.enqueue(seqClearLine)
}

// Print enqueues the given text verbatim.
func (t *Terminal) Print(s string) error {
	return t.enqueue(s)
}

// MoveTo enqueues a cursor move to the given zero-based position. Both
// components are validated against MaxCoordinate before anything is
// enqueued; a violation returns errs.ErrCoordinateOutOfRange wrapped with
// the offending values and transmits nothing.
func (t *Terminal) MoveTo(p Position) error {
	if p.Col < 0 || p.Col > MaxCoordinate || p.Row < 0 || p.Row > MaxCoordinate {
		return fmt.Errorf("%w: col=%d row=%d (max %d)",
			errs.ErrCoordinateOutOfRange, p.Col, p.Row, MaxCoordinate)
	}
	// CUP coordinates are 1-based.
	return t.enqueue("\x1b[" + util.IntToString(p.Row+1) + ";" + util.IntToString(p.Col+1) + "H")
}

// Flush transmits every enqueued command to the sink as one batch.
func (t *Terminal) Flush() error {
	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("flush terminal output: %w", err)
	}
	return nil
}

func (t *Terminal) enqueue(s string) error {
	if _, err := t.out.WriteString(s); err != nil {
		return fmt.Errorf("write terminal command: %w", err)
	}
	return nil
}
