package speed

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fadeCall struct {
	clip   string
	volume float64
	fade   time.Duration
}

type recordingFader struct {
	calls []fadeCall
	err   error
}

func (r *recordingFader) CrossFade(clip string, maxVolume float64, fade time.Duration) error {
	r.calls = append(r.calls, fadeCall{clip, maxVolume, fade})
	return r.err
}

func TestStartsAtNormal(t *testing.T) {
	f := &recordingFader{}
	c := NewController(DefaultConfig(), f)

	assert.Equal(t, 15.0, c.Speed())
	assert.Equal(t, ModeNormal, c.Mode())
	assert.False(t, c.Ramping())
	require.Len(t, f.calls, 1)
	assert.Equal(t, fadeCall{"normal", 1.0, 2 * time.Second}, f.calls[0])
}

func TestBoostRampStopsAtTarget(t *testing.T) {
	f := &recordingFader{}
	c := NewController(DefaultConfig(), f)

	var reached []float64
	c.OnTargetReached(func(m Mode, v float64) {
		assert.Equal(t, ModeDrop, m)
		reached = append(reached, v)
	})

	require.NoError(t, c.Enter("speed_boost"))
	assert.Equal(t, "fast", f.calls[len(f.calls)-1].clip)

	// 5 u/s over 0.5 s steps: 17.5, 20, ... 30 after six updates
	for i := 1; i <= 5; i++ {
		got := c.Update(0.5)
		assert.InDelta(t, 15+2.5*float64(i), got, 1e-9)
		assert.True(t, c.Ramping())
	}
	assert.InDelta(t, 30.0, c.Update(0.5), 1e-9)
	assert.False(t, c.Ramping())
	assert.Len(t, reached, 1)

	// Ramp stopped, further updates hold
	assert.InDelta(t, 30.0, c.Update(0.5), 1e-9)
}

func TestRampOvershootIsNotClamped(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	require.NoError(t, c.Enter("speed_boost"))

	assert.InDelta(t, 30.0-2.0, c.Update(2.6), 1e-9) // 15 + 13
	assert.InDelta(t, 31.0, c.Update(0.6), 1e-9)
	assert.False(t, c.Ramping())
}

func TestSlowDownBrakes(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	require.NoError(t, c.Enter("slow_down"))
	assert.Equal(t, ModeClimbUp, c.Mode())
	assert.Equal(t, ModeNormal, c.Previous())

	assert.InDelta(t, 10.0, c.Update(1), 1e-9)
	assert.InDelta(t, 5.0, c.Update(1), 1e-9)
	assert.False(t, c.Ramping())
}

func TestReenterRetargets(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	require.NoError(t, c.Enter("speed_boost"))
	c.Update(1) // 20

	require.NoError(t, c.Enter("slow_down"))
	assert.True(t, c.Ramping())
	assert.InDelta(t, 15.0, c.Update(1), 1e-9)
	assert.InDelta(t, 10.0, c.Update(1), 1e-9)
	assert.InDelta(t, 5.0, c.Update(1), 1e-9)
	assert.False(t, c.Ramping())
}

func TestEnterAtTargetDoesNotRamp(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	require.NoError(t, c.Enter("normal_speed"))
	assert.False(t, c.Ramping())
	assert.Equal(t, 15.0, c.Update(1))
}

func TestUnknownTag(t *testing.T) {
	f := &recordingFader{}
	c := NewController(DefaultConfig(), f)
	err := c.Enter("warp")
	assert.True(t, errors.Is(err, ErrUnknownZoneTag))
	assert.Equal(t, ModeNormal, c.Mode())
	assert.Len(t, f.calls, 1)
}

func TestFaderErrorIsTolerated(t *testing.T) {
	f := &recordingFader{err: errors.New("no device")}
	c := NewController(DefaultConfig(), f)
	require.NoError(t, c.Enter("speed_boost"))
	assert.Equal(t, ModeDrop, c.Mode())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "drop", ModeDrop.String())
	assert.Equal(t, "mode(9)", Mode(9).String())
}
