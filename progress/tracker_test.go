package progress

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/vr-coaster/curve"
	"github.com/lixenwraith/vr-coaster/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tenUnitLine has arc length 10 so speed 3 at dt 0.1 advances the parameter by 0.03
var tenUnitLine = curve.Line{From: mgl64.Vec3{0, 0, 0}, To: mgl64.Vec3{10, 0, 0}}

func newTracker(t *testing.T, c curve.Provider, mode TravelMode) *Tracker {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Mode = mode
	tr, err := NewTracker(c, cfg)
	require.NoError(t, err)
	return tr
}

func circularDistance(a, b float64) float64 {
	d := math.Abs(vmath.Repeat(a, 1) - vmath.Repeat(b, 1))
	return math.Min(d, 1-d)
}

func TestTracker_LoopIsPeriodic(t *testing.T) {
	for _, speed := range []float64{3, -3} {
		tr := newTracker(t, tenUnitLine, Loop)
		completions := 0
		tr.OnCompleted(func(Completion) { completions++ })

		for k := 1; k <= 200; k++ {
			step := tr.Advance(speed, 0.1)
			expected := float64(k) * speed * 0.1 / 10
			assert.Less(t, circularDistance(step.Parameter, expected), 1e-9, "speed %v tick %d", speed, k)
			assert.GreaterOrEqual(t, step.Parameter, -1.0)
			assert.LessOrEqual(t, step.Parameter, 2.0)
		}
		// Forward arrives at the end after each lap; backward also fires on the first tick since it starts inside the zero band
		want := 6
		if speed < 0 {
			want = 7
		}
		assert.Equal(t, want, completions, "speed %v", speed)
		assert.True(t, tr.Forward(), "loop never flips direction")
	}
}

func TestTracker_PingPongReflectsForward(t *testing.T) {
	tr := newTracker(t, tenUnitLine, PingPong)
	var got []Completion
	tr.OnCompleted(func(c Completion) { got = append(got, c) })

	tr.Reset(0.95)
	tr.Advance(3, 0.1) // 0.98
	assert.True(t, tr.Forward())

	step := tr.Advance(3, 0.1) // 1.01 reflects to 0.99
	require.Len(t, got, 1)
	assert.Equal(t, EndpointOne, got[0].Endpoint)
	assert.InDelta(t, 1.01, got[0].Parameter, 1e-9)
	assert.InDelta(t, 2-got[0].Parameter, step.Parameter, 1e-12)
	assert.True(t, step.Completed)
	assert.False(t, tr.Forward())

	// Same signed speed now travels toward zero
	step = tr.Advance(3, 0.1)
	assert.InDelta(t, 0.96, step.Parameter, 1e-9)
	assert.False(t, step.MovingForward)
	assert.False(t, tr.Forward(), "flip happens once per crossing")
	assert.Len(t, got, 1)
}

func TestTracker_PingPongReflectsBackward(t *testing.T) {
	tr := newTracker(t, tenUnitLine, PingPong)
	var got []Completion
	tr.OnCompleted(func(c Completion) { got = append(got, c) })

	tr.Reset(0.05)
	tr.Advance(-3, 0.1)         // 0.02
	step := tr.Advance(-3, 0.1) // -0.01 reflects to 0.01
	require.Len(t, got, 1)
	assert.Equal(t, EndpointZero, got[0].Endpoint)
	assert.InDelta(t, -got[0].Parameter, step.Parameter, 1e-12)
	assert.False(t, tr.Forward())

	step = tr.Advance(-3, 0.1)
	assert.True(t, step.MovingForward)
	assert.InDelta(t, 0.04, step.Parameter, 1e-9)
}

func TestTracker_CompletionOncePerDwell(t *testing.T) {
	tr := newTracker(t, tenUnitLine, Once)
	count := 0
	tr.OnCompleted(func(Completion) { count++ })

	tr.Reset(0.9)
	for i := 0; i < 10; i++ {
		tr.Advance(3, 0.1)
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 1.0, tr.Progress())
	assert.Equal(t, BandLatched, tr.Band(EndpointOne))

	// Backing away does not evaluate the far latch
	for i := 0; i < 5; i++ {
		tr.Advance(-3, 0.1)
	}
	assert.Equal(t, BandLatched, tr.Band(EndpointOne))

	// Leaving the band forward clears it, re-entering fires again
	tr.Advance(3, 0.1)
	assert.Equal(t, BandClear, tr.Band(EndpointOne))
	for i := 0; i < 10; i++ {
		tr.Advance(3, 0.1)
	}
	assert.Equal(t, 2, count)
}

func TestTracker_ZeroRelaxationFiresAtBoundary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = Once
	cfg.RelaxationBand = 0
	tr, err := NewTracker(curve.Line{To: mgl64.Vec3{0, 0, 1}}, cfg)
	require.NoError(t, err)

	fired := -1
	for i := 1; i <= 4; i++ {
		if tr.Advance(0.25, 1).Completed {
			fired = i
		}
	}
	assert.Equal(t, 4, fired)
}

func TestTracker_OvershootIsClamped(t *testing.T) {
	tr := newTracker(t, curve.Line{To: mgl64.Vec3{1, 0, 0}}, PingPong)

	step := tr.Advance(5, 1) // Lands at 5, naive reflection gives -3
	assert.GreaterOrEqual(t, step.Parameter, 0.0)
	assert.LessOrEqual(t, step.Parameter, 1.0)
	assert.False(t, tr.Forward())

	loop := newTracker(t, curve.Line{To: mgl64.Vec3{1, 0, 0}}, Loop)
	step = loop.Advance(3.7, 1)
	assert.InDelta(t, 0.7, step.Parameter, 1e-9)
}

func TestTracker_OrientationFollowsTravel(t *testing.T) {
	tr := newTracker(t, tenUnitLine, Loop)
	assert.True(t, vmath.NearlyEqual(vmath.AxisForward(tr.Rotation()), vmath.Right, 1e-9))

	tr.Reset(0.5)
	// Lerp rate 10 at dt 0.1 reaches the target in one tick
	step := tr.Advance(-1, 0.1)
	assert.False(t, step.MovingForward)
	assert.True(t, vmath.NearlyEqual(vmath.AxisForward(step.Rotation), vmath.Right.Mul(-1), 1e-6))
}

func TestTracker_OrientationDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LookForward = false
	tr, err := NewTracker(curve.Circle{Radius: 5}, cfg)
	require.NoError(t, err)
	initial := tr.Rotation()
	step := tr.Advance(5, 0.5)
	assert.Equal(t, initial, step.Rotation)
}

func TestTracker_NilCurveHoldsState(t *testing.T) {
	tr, err := NewTracker(nil, DefaultConfig())
	require.NoError(t, err)
	step := tr.Advance(10, 1)
	assert.Equal(t, 0.0, step.Parameter)
	assert.False(t, step.Completed)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = 7
	_, err := NewTracker(tenUnitLine, cfg)
	assert.ErrorIs(t, err, ErrUnknownTravelMode)

	cfg = DefaultConfig()
	cfg.RelaxationBand = 0.6
	_, err = NewTracker(tenUnitLine, cfg)
	assert.ErrorIs(t, err, ErrBadRelaxation)
}

func TestParseTravelMode(t *testing.T) {
	m, err := ParseTravelMode("PingPong")
	require.NoError(t, err)
	assert.Equal(t, PingPong, m)
	assert.Equal(t, "loop", Loop.String())

	_, err = ParseTravelMode("bounce")
	assert.ErrorIs(t, err, ErrUnknownTravelMode)
}

func TestBandState_Transitions(t *testing.T) {
	cases := []struct {
		from   BandState
		inBand bool
		to     BandState
		edge   BandEdge
	}{
		{BandClear, false, BandClear, EdgeNone},
		{BandClear, true, BandLatched, EdgeEntered},
		{BandLatched, true, BandLatched, EdgeNone},
		{BandLatched, false, BandClear, EdgeLeft},
	}
	for _, c := range cases {
		to, edge := c.from.evaluate(c.inBand)
		assert.Equal(t, c.to, to, "%s inBand=%v", c.from, c.inBand)
		assert.Equal(t, c.edge, edge, "%s inBand=%v", c.from, c.inBand)
	}
}
