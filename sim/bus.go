package sim

import "sync"

// busMessage is either a new event request (a client suspending itself)
// or an interrupt command (any goroutine redirecting another client's
// current wait). Routing both through one ingress keeps the DES state
// genuinely single-writer (spec §5): Interrupt, like Delay/DelayUntil,
// never touches queue/registry directly — it only ever publishes here.
type busMessage struct {
	event     *Event
	interrupt *interruptCmd
}

type interruptCmd struct {
	target *Client
	err    *TerminationError
}

// requestBus is the unbounded ingress channel clients and callers publish
// on (spec §3 requests, §9 "Unbounded ingress"). A bounded Go channel
// would reintroduce the deadlock the design notes warn about, so publish
// is backed by a mutex-guarded slice rather than a fixed-capacity chan —
// the same submit-then-signal shape as
// joeycumines-go-utilpkg/eventloop's auxJobs ingestion.
type requestBus struct {
	mu      sync.Mutex
	pending []busMessage
	signal  chan struct{}
}

func newRequestBus(bufferHint int) *requestBus {
	if bufferHint < 1 {
		bufferHint = 1
	}
	return &requestBus{
		pending: make([]busMessage, 0, bufferHint),
		signal:  make(chan struct{}, 1),
	}
}

func (b *requestBus) publishEvent(e *Event) {
	b.publish(busMessage{event: e})
}

func (b *requestBus) publishInterrupt(target *Client, err *TerminationError) {
	b.publish(busMessage{interrupt: &interruptCmd{target: target, err: err}})
}

func (b *requestBus) publish(m busMessage) {
	b.mu.Lock()
	b.pending = append(b.pending, m)
	b.mu.Unlock()
	b.wake()
}

// wake nudges a scheduler blocked in the ingest select, without blocking
// itself: the signal channel is a 1-deep doorbell, not a data channel.
func (b *requestBus) wake() {
	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// drainAll returns every message published since the last drain, in
// submission order, or nil if none are pending.
func (b *requestBus) drainAll() []busMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.pending) == 0 {
		return nil
	}
	out := b.pending
	b.pending = nil
	return out
}
