// Package sim provides a process-oriented discrete-event simulation kernel.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - event.go: the Event value object, the unit of pending work
//   - queue.go: the EventQueue, a min-priority structure over distinct
//     virtual timestamps
//   - registry.go: ClientRegistry, bidirectional client<->slot bookkeeping
//   - bus.go: RequestBus, the unbounded ingress channel clients publish on
//   - des.go: DES, the central state, and the Scheduler main loop
//   - watchdog.go: the parallel idle-detector
//   - client.go: the Client API (Delay, DelayUntil, Now, Interrupt)
//
// # Architecture
//
// Client processes are goroutines. Each one suspends itself at a chosen
// virtual timestamp by publishing an Event on the RequestBus and blocking
// on that Event's private rendezvous channel. A single Scheduler goroutine
// drains the bus, files events into the EventQueue, advances the virtual
// clock to the next timestamp, and wakes the waiting client(s) — in
// submission order for events sharing a timestamp — by posting to their
// rendezvous, or by injecting a *TerminationError if the event carries the
// error flag. A parallel Watchdog goroutine observes the clock and injects
// IDLE if virtual time stalls while clients remain outstanding.
//
// The DES value is logically single-writer: only the scheduler goroutine
// mutates queue, registry, and clock state. Client goroutines only ever
// write to the RequestBus and read from their own rendezvous channel.
package sim
