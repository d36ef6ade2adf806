package curve

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/vr-coaster/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareLoop(t *testing.T) *BezierSpline {
	t.Helper()
	s, err := NewAutoSpline([]mgl64.Vec3{
		{0, 0, 0}, {10, 0, 0}, {10, 0, 10}, {0, 0, 10},
	}, true, 0.5)
	require.NoError(t, err)
	return s
}

func TestBezierSpline_RequiresTwoPoints(t *testing.T) {
	_, err := NewBezierSpline([]ControlPoint{{}}, false)
	assert.ErrorIs(t, err, ErrNoControlPoints)
}

func TestBezierSpline_PassesThroughKnots(t *testing.T) {
	pts := []mgl64.Vec3{{0, 0, 0}, {4, 1, 0}, {8, 0, 3}}
	s, err := NewAutoSpline(pts, false, 0.5)
	require.NoError(t, err)

	assert.True(t, vmath.NearlyEqual(s.Point(0), pts[0], 1e-9))
	assert.True(t, vmath.NearlyEqual(s.Point(0.5), pts[1], 1e-9))
	assert.True(t, vmath.NearlyEqual(s.Point(1), pts[2], 1e-9))

	// Open curves clamp
	assert.True(t, vmath.NearlyEqual(s.Point(-0.3), pts[0], 1e-9))
	assert.True(t, vmath.NearlyEqual(s.Point(1.7), pts[2], 1e-9))
}

func TestBezierSpline_LoopWraps(t *testing.T) {
	s := squareLoop(t)
	assert.True(t, s.IsLoop())
	assert.True(t, vmath.NearlyEqual(s.Point(1), s.Point(0), 1e-9))
	assert.True(t, vmath.NearlyEqual(s.Point(1.25), s.Point(0.25), 1e-9))
	assert.True(t, vmath.NearlyEqual(s.Point(-0.25), s.Point(0.75), 1e-9))
}

func TestBezierSpline_TangentMatchesFiniteDifference(t *testing.T) {
	s := squareLoop(t)
	const h = 1e-6
	for _, u := range []float64{0.1, 0.3, 0.6, 0.9} {
		fd := s.Point(u + h).Sub(s.Point(u - h)).Mul(1 / (2 * h))
		assert.True(t, vmath.NearlyEqual(s.Tangent(u), fd, 1e-3), "u=%v", u)
	}
}

func TestBezierSpline_AdvanceByArcLength(t *testing.T) {
	s := squareLoop(t)
	require.NoError(t, s.SetAccuracy(16))

	start := 0.1
	next, pos := s.AdvanceByArcLength(start, 0.5)
	assert.Greater(t, next, start)
	assert.InDelta(t, 0.5, pos.Sub(s.Point(start)).Len(), 0.01)

	back, _ := s.AdvanceByArcLength(next, -0.5)
	assert.InDelta(t, start, back, 2e-3)

	assert.ErrorIs(t, s.SetAccuracy(0), ErrBadAccuracy)
}

func TestLine_AdvanceIsExact(t *testing.T) {
	l := Line{From: mgl64.Vec3{0, 0, 0}, To: mgl64.Vec3{0, 0, 4}}
	next, pos := l.AdvanceByArcLength(0.25, 1)
	assert.InDelta(t, 0.5, next, 1e-12)
	assert.True(t, vmath.NearlyEqual(pos, mgl64.Vec3{0, 0, 2}, 1e-9))

	// Parameter is returned unwrapped past the end
	next, pos = l.AdvanceByArcLength(0.9, 1)
	assert.InDelta(t, 1.15, next, 1e-12)
	assert.True(t, vmath.NearlyEqual(pos, l.To, 1e-9))
}

func TestLine_DegenerateDoesNotMove(t *testing.T) {
	l := Line{}
	next, _ := l.AdvanceByArcLength(0.3, 5)
	assert.Equal(t, 0.3, next)
}

func TestCircle_LengthAndAdvance(t *testing.T) {
	c := Circle{Radius: 2}
	assert.InDelta(t, 4*math.Pi, Length(c, 2000), 1e-3)

	next, pos := c.AdvanceByArcLength(0, math.Pi) // Quarter turn
	assert.InDelta(t, 0.25, next, 1e-12)
	assert.True(t, vmath.NearlyEqual(pos, mgl64.Vec3{2, 0, 0}, 1e-9))

	next, pos = c.AdvanceByArcLength(0.95, math.Pi)
	assert.InDelta(t, 1.2, next, 1e-12)
	assert.True(t, vmath.NearlyEqual(pos, c.Point(0.2), 1e-9))
}
