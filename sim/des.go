package sim

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// DES is the central simulation state (spec §3): exactly one per run. Its
// queue, registry, and clock are logically single-writer — mutated only
// from inside Simulate's scheduler loop — per spec §5. Every other
// goroutine, including Interrupt callers, communicates in only through
// the RequestBus.
type DES struct {
	opts     *desOptions
	queue    *EventQueue
	registry *ClientRegistry
	bus      *requestBus
	logger   logrus.FieldLogger

	clock        atomic.Uint64 // math.Float64bits(VirtualTime), read by any goroutine
	liveClients  atomic.Int64
	nextClientID atomic.Uint64

	termination        TerminationReason
	delivered          int
	interruptedCount   int
	interruptsByReason map[TerminationReason]int
}

// New constructs a DES with the given options. The clock starts at
// WithStartTime's value, defaulting to 0.0 (spec §6).
func New(opts ...DESOption) *DES {
	cfg := resolveDESOptions(opts)
	d := &DES{
		opts:               cfg,
		queue:              newEventQueue(),
		registry:           newClientRegistry(),
		bus:                newRequestBus(cfg.requestBufferHint),
		logger:             cfg.logger,
		interruptsByReason: make(map[TerminationReason]int),
	}
	d.setTime(cfg.startTime)
	return d
}

// Now reads the central virtual clock. Safe from any goroutine.
func (d *DES) Now() VirtualTime {
	return VirtualTime(math.Float64frombits(d.clock.Load()))
}

func (d *DES) setTime(t VirtualTime) {
	d.clock.Store(math.Float64bits(float64(t)))
}

// Register spawns run in a new goroutine bound to a fresh Client handle
// and returns the handle (spec §4.4 register). The DES tracks run's
// lifetime only to know whether the client could still submit a future
// request; it never inspects run's internals.
func (d *DES) Register(run func(c *Client)) *Client {
	c := &Client{id: d.nextClientID.Add(1), des: d}
	d.liveClients.Add(1)
	go func() {
		defer func() {
			d.liveClients.Add(-1)
			d.bus.wake()
		}()
		run(c)
	}()
	return c
}

// Interrupt terminates or redirects target's current wait (spec §4.3,
// §4.4). Safe to call from any goroutine, including concurrently with a
// running Simulate: the request is only ever applied from inside the
// scheduler loop. A nil err defaults to FAILURE, matching the Library
// surface's interrupt(sim, client, exc=Failure) default.
func (d *DES) Interrupt(target *Client, err *TerminationError) {
	if err == nil {
		err = newTermination(Failure, nil)
	}
	d.bus.publishInterrupt(target, err)
}

// suspend is the shared implementation behind Client.Delay/DelayUntil: it
// publishes an event request and blocks on that event's private
// rendezvous until the scheduler resumes or fails it.
func (d *DES) suspend(c *Client, t VirtualTime, value any, errorFlag bool) (any, error) {
	e := newEvent(c, t, value, errorFlag)
	d.bus.publishEvent(e)
	result := <-e.rendezvous
	return result.value, result.err
}

// Simulate runs the scheduler main loop until termination (spec §4.2):
// the queue empties with nothing more arriving, the watchdog detects a
// stall, or the horizon time+horizon is reached. If finish is true, every
// client still suspended at exit is interrupted with FINISHED.
func (d *DES) Simulate(horizon VirtualTime, finish bool) Report {
	start := time.Now()
	stime := d.Now() + horizon
	d.termination = Unset
	d.delivered = 0
	d.interruptedCount = 0
	d.interruptsByReason = make(map[TerminationReason]int)

	d.logger.WithFields(logrus.Fields{
		"start_time": float64(d.Now()),
		"horizon":    float64(horizon),
		"finish":     finish,
	}).Debug("sim: starting run")

	wd := newWatchdog(d, d.opts.watchdogInterval)
	wd.start()
	defer wd.stop()

loop:
	for d.Now() < stime {
		select {
		case <-wd.idleCh:
			d.termination = Idle
			break loop
		default:
		}

		msgs := d.bus.drainAll()
		if len(msgs) == 0 && d.queue.isEmpty() {
			if d.liveClients.Load() == 0 {
				break loop // nothing pending, nobody left who could ever submit
			}
			select {
			case <-d.bus.signal:
				msgs = d.bus.drainAll()
				if len(msgs) == 0 {
					continue loop // stale doorbell or a client exiting: re-check
				}
			case <-wd.idleCh:
				d.termination = Idle
				break loop
			}
		}

		d.ingest(msgs)

		slot, t, ok := d.queue.peekMin()
		if !ok {
			break loop // normal exit: ingestion produced nothing to deliver
		}
		if t < d.Now() {
			panic("sim: time regression detected")
		}
		d.setTime(t)

		if d.deliverSlot(slot, t, stime) {
			d.termination = Done
			break loop
		}
	}

	d.setTime(stime)
	if finish {
		for _, c := range d.registry.suspended() {
			d.interrupt(c, newTermination(Finished, nil))
		}
	}

	d.logger.WithFields(logrus.Fields{
		"termination":         d.termination.String(),
		"final_time":          float64(d.Now()),
		"events_delivered":    d.delivered,
		"clients_interrupted": d.interruptedCount,
	}).Debug("sim: run finished")

	byReason := make(map[TerminationReason]int, len(d.interruptsByReason))
	for reason, n := range d.interruptsByReason {
		byReason[reason] = n
	}

	return Report{
		Termination:        d.termination,
		Duration:           time.Since(start),
		EventsDelivered:    d.delivered,
		ClientsInterrupted: d.interruptedCount,
		InterruptsByReason: byReason,
		FinalTime:          d.Now(),
	}
}

// ingest files every drained message into the queue/registry, or applies
// it as an immediate interrupt. Always called from the scheduler
// goroutine.
func (d *DES) ingest(msgs []busMessage) {
	for _, m := range msgs {
		switch {
		case m.event != nil:
			slot := d.queue.insert(m.event)
			d.registry.addSlot(m.event.Owner, slot)
		case m.interrupt != nil:
			d.interrupt(m.interrupt.target, m.interrupt.err)
		}
	}
}

// deliverSlot processes every event filed under slot, all sharing
// timestamp t (spec §4.2 step d). Error events always interrupt their
// owner, regardless of horizon — interrupt() itself evicts the owner from
// every slot it occupies, so each owner's removal is scoped individually
// rather than popping the whole slot up front; this keeps coalesced
// slots holding several owners (spec §8 tie-ordering scenario) correct
// when they mix error and non-error events.
//
// Non-error events are only delivered if t is before stime. If t >=
// stime, the event is deliberately left exactly as filed — in both the
// queue and the registry — so the owner remains suspended rather than
// resumed (spec §4.2 edge cases) and is still reachable by a later
// FINISHED sweep or explicit Interrupt call (spec §8 scenario 6: "A left
// suspended; if finish=true, A receives FINISHED"). Popping it here would
// strand that client's rendezvous with nothing left able to signal it.
//
// One horizon check per slot, not per event, per §9 Open Question #1 as
// resolved in SPEC_FULL §11.4: coalescing by exact timestamp makes a
// mid-slot split across the horizon impossible for the non-error branch.
// The error branch never participates in the horizon check at all, per
// spec's literal step d wording.
func (d *DES) deliverSlot(slot slotID, t VirtualTime, stime VirtualTime) (horizonCrossed bool) {
	horizonCrossed = t >= stime
	events := append([]*Event(nil), d.queue.eventsOf(slot)...)
	for _, e := range events {
		switch {
		case e.Error:
			d.interrupt(e.Owner, newTermination(Failure, nil))
		case horizonCrossed:
			// left suspended; no queue/registry mutation.
		default:
			for _, re := range d.queue.removeEventsOfOwner(slot, e.Owner) {
				d.registry.removeSlot(re.Owner, slot)
				d.delivered++
				re.deliver(delivery{value: re.Value})
			}
		}
	}
	return horizonCrossed
}

// interrupt implements spec §4.3: evict c from every slot it occupies
// (failing any of its own outstanding events with te), then clear its
// registry entry. Always called from the scheduler goroutine, whether
// triggered by an explicit error Event, an application Interrupt call
// routed through the bus, or the end-of-run FINISHED sweep.
func (d *DES) interrupt(c *Client, te *TerminationError) {
	interrupted := false
	for _, s := range d.registry.slotsOf(c) {
		for _, e := range d.queue.removeEventsOfOwner(s, c) {
			e.deliver(delivery{err: te})
			interrupted = true
		}
	}
	d.registry.clear(c)
	if interrupted {
		d.interruptedCount++
		d.interruptsByReason[te.Reason]++
		d.logger.WithFields(logrus.Fields{
			"client": c.ID(),
			"reason": te.Reason.String(),
			"time":   float64(d.Now()),
		}).Debug("sim: client interrupted")
	}
}
