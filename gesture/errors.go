package gesture

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownGesture is returned when a requested name is not in the
	// registry. The active set is left untouched.
	ErrUnknownGesture = errors.New("unknown gesture")

	// ErrInvalidParameter is returned when a caller override is outside
	// its domain (negative duration, non-finite value, ...). The request
	// is rejected and prior state is unchanged.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Fault reports a compute failure during Tick: a panicking animator or a
// non-finite output. The offending gesture has already been force-finished
// and excluded from the frame; Tick itself never fails.
type Fault struct {
	Gesture  string
	Progress float64
	Err      error
}

func (f Fault) Error() string {
	return fmt.Sprintf("gesture %q fault at progress %.3f: %v", f.Gesture, f.Progress, f.Err)
}

func (f Fault) Unwrap() error { return f.Err }
