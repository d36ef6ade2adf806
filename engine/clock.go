package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// Clock calls a tick function at a fixed interval with drift correction
// Each tick receives the fixed step in seconds regardless of scheduling jitter
type Clock struct {
	interval time.Duration
	tick     func(dt float64)

	paused atomic.Bool
	ticks  atomic.Uint64
}

// NewClock creates a clock; interval must be positive
func NewClock(interval time.Duration, tick func(dt float64)) *Clock {
	return &Clock{interval: interval, tick: tick}
}

// Run ticks until ctx is cancelled
func (c *Clock) Run(ctx context.Context) {
	dt := c.interval.Seconds()
	deadline := time.Now().Add(c.interval)

	timer := time.NewTimer(c.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		now := time.Now()
		if !c.paused.Load() {
			c.tick(dt)
			c.ticks.Add(1)
		}

		deadline = deadline.Add(c.interval)
		// Skip ahead rather than burst when far behind
		if now.Sub(deadline) > c.interval*2 {
			deadline = now.Add(c.interval)
		}

		sleep := time.Until(deadline)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// SetPaused stops ticks from reaching the tick function
func (c *Clock) SetPaused(paused bool) { c.paused.Store(paused) }

func (c *Clock) Paused() bool { return c.paused.Load() }

// Ticks returns the number of delivered ticks
func (c *Clock) Ticks() uint64 { return c.ticks.Load() }
