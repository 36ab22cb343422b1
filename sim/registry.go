package sim

// ClientRegistry is the bidirectional mapping from client process to the
// queue slots it currently occupies (spec §3 clientSlots), enabling O(k)
// cleanup on interrupt rather than a scan of the whole queue. Entries are
// created lazily by addSlot (or as an empty set by clear): a client with
// no entry, or an empty one, is reported by slotsOf as occupying nothing.
type ClientRegistry struct {
	slots map[*Client]map[slotID]struct{}
}

func newClientRegistry() *ClientRegistry {
	return &ClientRegistry{slots: make(map[*Client]map[slotID]struct{})}
}

func (r *ClientRegistry) addSlot(c *Client, slot slotID) {
	set, ok := r.slots[c]
	if !ok {
		set = make(map[slotID]struct{})
		r.slots[c] = set
	}
	set[slot] = struct{}{}
}

func (r *ClientRegistry) removeSlot(c *Client, slot slotID) {
	if set, ok := r.slots[c]; ok {
		delete(set, slot)
	}
}

// slotsOf returns the slots c currently occupies.
func (r *ClientRegistry) slotsOf(c *Client) []slotID {
	set, ok := r.slots[c]
	if !ok {
		return nil
	}
	out := make([]slotID, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	return out
}

// clear empties c's slot list, e.g. after interrupt has evicted it from
// every slot it occupied.
func (r *ClientRegistry) clear(c *Client) {
	r.slots[c] = make(map[slotID]struct{})
}

// suspended returns every client currently occupying at least one slot —
// i.e. every client the scheduler could still interrupt or deliver to.
func (r *ClientRegistry) suspended() []*Client {
	out := make([]*Client, 0, len(r.slots))
	for c, set := range r.slots {
		if len(set) > 0 {
			out = append(out, c)
		}
	}
	return out
}
