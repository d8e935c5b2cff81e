// Package errors defines sentinel errors used across multiple packages.
package errors

import "errors"

// ErrCoordinateOutOfRange is returned when a logical coordinate exceeds the
// maximum value the terminal cursor-positioning protocol can represent. It is
// distinct from plain I/O errors so callers can tell "the device rejected the
// write" apart from "our coordinate math produced a bad value".
var ErrCoordinateOutOfRange = errors.New("coordinate out of range")

// ErrNoDevice is returned when the terminal size is queried but no size
// source is available (for example, stdout is not attached to a terminal).
var ErrNoDevice = errors.New("no terminal device")
