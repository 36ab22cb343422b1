package sim

import "fmt"

// TerminationReason classifies why a run, or a single client's wait,
// ended (spec §4.6). Unset is the zero value and denotes the ordinary
// case: the scheduler drained the queue with no more requests arriving.
type TerminationReason int

const (
	Unset TerminationReason = iota
	Idle
	Done
	Finished
	Failure
)

func (r TerminationReason) String() string {
	switch r {
	case Unset:
		return "UNSET"
	case Idle:
		return "IDLE"
	case Done:
		return "DONE"
	case Finished:
		return "FINISHED"
	case Failure:
		return "FAILURE"
	default:
		return "UNKNOWN"
	}
}

// TerminationError is injected into a client's suspended delay/delayUntil
// call in place of a normal value. The run-level termination is recorded
// as a bare TerminationReason, not as a TerminationError. Modeled on the
// Cause/Unwrap shape of
// joeycumines-go-utilpkg/eventloop's TypeError/RangeError.
type TerminationError struct {
	Reason TerminationReason
	Cause  error
}

func (e *TerminationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("sim: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("sim: %s", e.Reason)
}

func (e *TerminationError) Unwrap() error { return e.Cause }

func newTermination(reason TerminationReason, cause error) *TerminationError {
	return &TerminationError{Reason: reason, Cause: cause}
}
