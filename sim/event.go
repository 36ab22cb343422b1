package sim

// VirtualTime is a simulated timestamp. It advances only when the
// Scheduler pops the next event; it has no relation to wall-clock time.
type VirtualTime float64

// delivery is the one-shot payload carried over an Event's rendezvous:
// either a value (normal wake-up) or an error (injected termination).
type delivery struct {
	value any
	err   error
}

// Event is the value object describing a single pending wake-up. It is
// immutable once submitted to the RequestBus: the Scheduler only ever
// reads its fields and writes its rendezvous exactly once.
type Event struct {
	Time  VirtualTime
	Value any
	Error bool
	Owner *Client

	// rendezvous is a 0-capacity channel private to this event. Exactly
	// one delivery is ever sent on it, exactly once.
	rendezvous chan delivery
}

func newEvent(owner *Client, t VirtualTime, value any, errorFlag bool) *Event {
	if value == nil {
		value = t
	}
	return &Event{
		Time:       t,
		Value:      value,
		Error:      errorFlag,
		Owner:      owner,
		rendezvous: make(chan delivery),
	}
}

func (e *Event) deliver(d delivery) {
	e.rendezvous <- d
}
