package main

import "time"

// frameClock reports the wall time elapsed between successive frames.
// Ebitengine paces Update at the configured TPS; the reported time still
// carries scheduling jitter.
type frameClock struct {
	now  func() time.Time
	last time.Time
}

func newFrameClock(now func() time.Time) *frameClock {
	return &frameClock{now: now, last: now()}
}

// Tick returns seconds since the previous Tick, or since construction.
func (c *frameClock) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return dt
}
