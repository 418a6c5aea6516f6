package pipeline

import (
	"errors"
	"fmt"
)

// Sentinel errors callers branch on.
var (
	// ErrStepBusy is returned when an upload targets a step that already has
	// a capability call outstanding.
	ErrStepBusy = errors.New("step has an upload in flight")
	// ErrSessionClosed is returned for any operation on a closed session,
	// including a capability response arriving after close.
	ErrSessionClosed = errors.New("verification session is closed")
	// ErrNotComplete is returned by Finish when not all steps are completed.
	ErrNotComplete = errors.New("not all verification steps are completed")
)

// TransitionError reports a step operation that the status graph forbids.
type TransitionError struct {
	Step Kind
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("step %s: transition %s → %s not allowed", e.Step, e.From, e.To)
}
