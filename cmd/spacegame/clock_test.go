package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClock_Tick(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	steps := []time.Duration{0, 16 * time.Millisecond, 33 * time.Millisecond, 50 * time.Millisecond}
	i := 0
	clock := newFrameClock(func() time.Time {
		t := base.Add(steps[i])
		if i < len(steps)-1 {
			i++
		}
		return t
	})

	assert.InDelta(t, 0.016, clock.Tick(), 1e-9)
	assert.InDelta(t, 0.017, clock.Tick(), 1e-9)
	assert.InDelta(t, 0.017, clock.Tick(), 1e-9)
}
