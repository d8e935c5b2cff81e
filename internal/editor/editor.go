// Package editor owns the session state and the event loop: it redraws the
// viewport each cycle, blocks for the next key press, and applies
// navigation to the logical cursor location until the quit key is seen.
package editor

import (
	"fmt"
	"log"

	"peruse/internal/input"
	"peruse/internal/terminal"
	"peruse/internal/util"
	"peruse/internal/viewer"
)

// goodbyeMessage is printed once on the final frame after a quit.
const goodbyeMessage = "Goodbye.\r\n"

// Location is a position in the document coordinate space, zero-based.
// It is logical, not a device coordinate; the terminal port translates it
// when the cursor is repositioned.
type Location struct {
	Row int
	Col int
}

// Editor aggregates the session: the quit flag, the current location, and
// the loaded view, with the terminal and input ports injected at
// construction. One Editor value is created per process and driven by Run.
type Editor struct {
	term   *terminal.Terminal
	events *input.Reader
	view   *viewer.View

	location   Location
	shouldQuit bool
}

// New returns an Editor over the given ports and view, positioned at the
// origin.
func New(term *terminal.Terminal, events *input.Reader, view *viewer.View) *Editor {
	return &Editor{
		term:   term,
		events: events,
		view:   view,
	}
}

// Run initializes the terminal, drives the event loop, and restores the
// device before returning. Teardown runs even when the loop fails; the
// loop's error takes precedence over a teardown error.
func (e *Editor) Run() error {
	if err := e.term.Initialize(); err != nil {
		return err
	}
	log.Printf("session started")

	loopErr := e.loop()
	termErr := e.term.Terminate()
	if loopErr != nil {
		return loopErr
	}
	return termErr
}

// loop is the read-refresh cycle. Each iteration redraws the full frame,
// then blocks on the next key press; the iteration after the quit key draws
// the farewell frame and exits.
func (e *Editor) loop() error {
	for {
		if err := e.refresh(); err != nil {
			return err
		}
		if e.shouldQuit {
			log.Printf("session ended")
			return nil
		}

		ev, err := e.events.ReadEvent()
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if err := e.handleEvent(ev); err != nil {
			return err
		}
	}
}

// refresh enqueues one complete frame and flushes it in a single batch:
// cursor hidden while drawing, repositioned to the session location (or
// left at the origin under the farewell message), then shown again.
func (e *Editor) refresh() error {
	if err := e.term.HideCursor(); err != nil {
		return err
	}
	if err := e.term.MoveTo(terminal.Position{}); err != nil {
		return err
	}

	if e.shouldQuit {
		if err := e.term.ClearScreen(); err != nil {
			return err
		}
		if err := e.term.Print(goodbyeMessage); err != nil {
			return err
		}
	} else {
		size, err := e.term.Size()
		if err != nil {
			return err
		}
		if err := e.view.Render(e.term, size); err != nil {
			return err
		}
		if err := e.term.MoveTo(terminal.Position{Col: e.location.Col, Row: e.location.Row}); err != nil {
			return err
		}
	}

	if err := e.term.ShowCursor(); err != nil {
		return err
	}
	return e.term.Flush()
}

// handleEvent applies a single key press: the quit combination arms the
// final cycle, navigation keys move the cursor, everything else is
// ignored.
func (e *Editor) handleEvent(ev input.Event) error {
	switch ev.Key {
	case input.KeyCtrlQ:
		e.shouldQuit = true
		return nil
	case input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight,
		input.KeyHome, input.KeyEnd, input.KeyPageUp, input.KeyPageDown:
		return e.moveCursor(ev.Key)
	default:
		return nil
	}
}

// moveCursor updates the location for one navigation key, clamped to the
// viewport bounds queried at this moment. Bounds are never cached: a
// resize between cycles must be respected on the very next move.
func (e *Editor) moveCursor(key input.Key) error {
	size, err := e.term.Size()
	if err != nil {
		return err
	}

	loc := e.location
	switch key {
	case input.KeyUp:
		loc.Row = util.SatSub(loc.Row, 1)
	case input.KeyDown:
		loc.Row = min(loc.Row+1, util.SatSub(size.Height, 1))
	case input.KeyLeft:
		loc.Col = util.SatSub(loc.Col, 1)
	case input.KeyRight:
		loc.Col = min(loc.Col+1, util.SatSub(size.Width, 1))
	case input.KeyPageUp:
		loc.Row = 0
	case input.KeyPageDown:
		loc.Row = util.SatSub(size.Height, 1)
	case input.KeyHome:
		loc.Col = 0
	case input.KeyEnd:
		loc.Col = util.SatSub(size.Width, 1)
	}
	e.location = loc
	return nil
}
