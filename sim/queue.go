package sim

import "container/heap"

// slotID is a monotone-increasing identifier for a queue slot: all events
// sharing one exact virtual timestamp coalesce into a single slot.
type slotID uint64

// EventQueue is a min-priority structure over distinct virtual timestamps,
// grounded in the teacher's sim.EventQueue (container/heap over a
// timestamp-keyed slice). Coalescing by exact timestamp keeps queue depth
// bounded by the number of distinct live instants rather than the number
// of outstanding events.
type EventQueue struct {
	times        timeHeap
	timeIndex    map[VirtualTime]slotID
	slotTimes    map[slotID]VirtualTime
	eventsBySlot map[slotID][]*Event
	nextSlot     slotID
}

// timeHeap implements container/heap.Interface over (slot, time) pairs,
// ordered by time.
type timeHeap []struct {
	slot slotID
	time VirtualTime
}

func (h timeHeap) Len() int            { return len(h) }
func (h timeHeap) Less(i, j int) bool  { return h[i].time < h[j].time }
func (h timeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *timeHeap) Push(x interface{}) {
	*h = append(*h, x.(struct {
		slot slotID
		time VirtualTime
	}))
}
func (h *timeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func newEventQueue() *EventQueue {
	return &EventQueue{
		timeIndex:    make(map[VirtualTime]slotID),
		slotTimes:    make(map[slotID]VirtualTime),
		eventsBySlot: make(map[slotID][]*Event),
	}
}

func (q *EventQueue) isEmpty() bool {
	return len(q.eventsBySlot) == 0
}

// insert files e into the slot for its timestamp, allocating a fresh slot
// if no live event currently shares e.Time. Returns the slot it landed in.
func (q *EventQueue) insert(e *Event) slotID {
	if slot, ok := q.timeIndex[e.Time]; ok {
		q.eventsBySlot[slot] = append(q.eventsBySlot[slot], e)
		return slot
	}
	slot := q.nextSlot
	q.nextSlot++
	q.timeIndex[e.Time] = slot
	q.slotTimes[slot] = e.Time
	q.eventsBySlot[slot] = []*Event{e}
	heap.Push(&q.times, struct {
		slot slotID
		time VirtualTime
	}{slot, e.Time})
	return slot
}

// peekMin returns the slot with the minimum timestamp. ok is false if the
// queue is empty. Lazily discards heap entries for slots already popped.
func (q *EventQueue) peekMin() (slot slotID, t VirtualTime, ok bool) {
	for len(q.times) > 0 {
		top := q.times[0]
		if _, live := q.eventsBySlot[top.slot]; !live {
			heap.Pop(&q.times)
			continue
		}
		return top.slot, top.time, true
	}
	return 0, 0, false
}

// popSlot removes slot and its timestamp from eventsBySlot, timeIndex and
// slotTimes. Its heap entry is left in place and discarded by peekMin.
func (q *EventQueue) popSlot(slot slotID) {
	t, ok := q.slotTimes[slot]
	if !ok {
		return
	}
	delete(q.eventsBySlot, slot)
	delete(q.timeIndex, t)
	delete(q.slotTimes, slot)
}

// eventsOf returns the (live) event list filed under slot.
func (q *EventQueue) eventsOf(slot slotID) []*Event {
	return q.eventsBySlot[slot]
}

// removeEventsOfOwner detaches every event owned by owner from slot and
// returns them, so the caller can fail them. If the remaining list is
// empty the slot is popped entirely (spec §4.3.1); otherwise the
// remaining events stay filed under slot.
func (q *EventQueue) removeEventsOfOwner(slot slotID, owner *Client) []*Event {
	events, ok := q.eventsBySlot[slot]
	if !ok {
		return nil
	}
	var removed, kept []*Event
	for _, e := range events {
		if e.Owner == owner {
			removed = append(removed, e)
		} else {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		q.popSlot(slot)
	} else {
		q.eventsBySlot[slot] = kept
	}
	return removed
}
