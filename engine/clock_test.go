package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vr-coaster/parameter"
)

func TestClockTicksUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var n atomic.Int32
	var step float64

	c := NewClock(time.Millisecond, func(dt float64) {
		step = dt
		if n.Add(1) == 5 {
			cancel()
		}
	})

	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("clock did not stop after cancel")
	}
	assert.GreaterOrEqual(t, c.Ticks(), uint64(5))
	assert.Equal(t, 0.001, step)
}

func TestClockPause(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	var n atomic.Int32
	c := NewClock(time.Millisecond, func(float64) { n.Add(1) })
	c.SetPaused(true)
	assert.True(t, c.Paused())
	c.Run(ctx)

	assert.Equal(t, int32(0), n.Load())
	assert.Equal(t, uint64(0), c.Ticks())
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	assert.True(t, mock.Now().Equal(start))

	mock.Advance(time.Hour)
	assert.True(t, mock.Now().Equal(start.Add(time.Hour)))

	next := start.Add(24 * time.Hour)
	mock.SetTime(next)
	assert.True(t, mock.Now().Equal(next))

	mock.AdvanceTicks(60)
	assert.True(t, mock.Now().Equal(next.Add(60*parameter.TickDuration)))

	var _ TimeSource = mock
	var _ TimeSource = NewMonotonicTimeProvider()
}
