package editor

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned by a byte source when the read window elapsed
// without any input.
var ErrTimeout = errors.New("read timed out")

var errZeroSize = errors.New("terminal reported a zero-sized window")

// TerminalConfigError reports a failure to query or change terminal
// attributes. Op names the failing operation.
type TerminalConfigError struct {
	Op  string
	Err error
}

func (e *TerminalConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TerminalConfigError) Unwrap() error { return e.Err }

// GeometryError reports that the window size could not be determined.
type GeometryError struct {
	Op  string
	Err error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GeometryError) Unwrap() error { return e.Err }
