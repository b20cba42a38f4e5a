package core

// Countdown is a frame-counted timer. Start arms it; each Tick after the
// arming frame removes one frame. A countdown armed during a frame does not
// lose a frame until the next Tick call, so Start(480) followed by 480 Ticks
// (one per later frame) expires it exactly.
type Countdown struct {
	Remaining int
	fresh     bool
}

// Start arms the countdown for n frames, replacing any time left.
func (c *Countdown) Start(n int) {
	c.Remaining = max(n, 0)
	c.fresh = c.Remaining > 0
}

// Active reports whether frames remain.
func (c *Countdown) Active() bool {
	return c.Remaining > 0
}

// Tick advances one frame and reports whether the countdown expired on it.
func (c *Countdown) Tick() bool {
	if c.fresh {
		c.fresh = false
		return false
	}
	if c.Remaining <= 0 {
		return false
	}
	c.Remaining--
	return c.Remaining == 0
}
