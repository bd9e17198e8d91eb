package dialer

import "github.com/MKhiriev/go-dialer/models"

func (c *Controller) buildSnapshot() models.DialerSnapshot {
	snap := models.DialerSnapshot{
		Status:      c.status,
		State:       c.state,
		Controls:    c.controls(),
		Mute:        c.muteButton(),
		Destination: c.destination,
	}
	switch {
	case c.session != nil:
		snap.CallID = c.session.ID()
	case c.pending != nil:
		snap.CallID = c.pending.ID()
	}
	return snap
}

// publish stores a fresh snapshot and hands it to subscribers, replacing
// any value they have not consumed yet.
func (c *Controller) publish() {
	snap := c.buildSnapshot()

	c.snapMu.Lock()
	if snap == c.snapshot {
		c.snapMu.Unlock()
		return
	}
	c.snapshot = snap
	c.snapMu.Unlock()

	c.subMu.Lock()
	defer c.subMu.Unlock()
	for ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

// Snapshot implements [Dialer].
func (c *Controller) Snapshot() models.DialerSnapshot {
	c.snapMu.RLock()
	defer c.snapMu.RUnlock()
	return c.snapshot
}

// Subscribe implements [Dialer]. The channel starts with the current
// snapshot and is closed when the loop exits.
func (c *Controller) Subscribe() (<-chan models.DialerSnapshot, func()) {
	ch := make(chan models.DialerSnapshot, 1)

	c.subMu.Lock()
	defer c.subMu.Unlock()

	if c.subsClosed {
		close(ch)
		return ch, func() {}
	}
	ch <- c.Snapshot()
	c.subs[ch] = struct{}{}

	cancel := func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		if _, ok := c.subs[ch]; ok {
			delete(c.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}
