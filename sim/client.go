package sim

// Client is the handle a registered process uses to talk to the DES: the
// Go rendering of spec §4.4's Client API. A Client is only ever obtained
// from DES.Register and is meant to be used from within the goroutine
// that Register started, though Delay/DelayUntil/Now are safe to call
// from elsewhere too (only Interrupt's target needs to be a different
// client than the caller).
type Client struct {
	id  uint64
	des *DES
}

// ID is a stable, opaque identifier, useful for logging.
func (c *Client) ID() uint64 { return c.id }

// Now reads the central virtual clock (spec §4.4 now()).
func (c *Client) Now() VirtualTime { return c.des.Now() }

// Delay is equivalent to DelayUntil(c.Now()+dt, nil, errorFlag) (spec
// §4.4). It suspends the calling goroutine until the scheduler resumes
// it, returning the delivered value, or the injected termination error
// if errorFlag was set (or the client was interrupted in the meantime).
func (c *Client) Delay(dt VirtualTime, errorFlag bool) (any, error) {
	return c.des.suspend(c, c.Now()+dt, nil, errorFlag)
}

// DelayUntil constructs an event for absolute virtual time t, publishes
// it, and suspends until the event's rendezvous yields a value or an
// error. value defaults to t when nil (spec §3 Event.value).
func (c *Client) DelayUntil(t VirtualTime, value any, errorFlag bool) (any, error) {
	return c.des.suspend(c, t, value, errorFlag)
}

// Interrupt terminates or redirects another client's current wait (spec
// §4.4, §4.3). A no-op if the target has nothing outstanding.
func (c *Client) Interrupt(target *Client, err *TerminationError) {
	c.des.Interrupt(target, err)
}
