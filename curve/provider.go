// Package curve supplies parametric paths sampled by the ride and the track builder
package curve

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/vr-coaster/parameter"
	"github.com/lixenwraith/vr-coaster/vmath"
)

var (
	ErrNoControlPoints = errors.New("curve: at least two control points required")
	ErrBadAccuracy     = errors.New("curve: arc length accuracy must be positive")
)

// Provider is a parametric curve over t in [0,1]
// Out-of-range parameters clamp on open curves and wrap on loops
type Provider interface {
	// Point returns the world position at t
	Point(t float64) mgl64.Vec3

	// Tangent returns dP/dt at t, not normalized
	Tangent(t float64) mgl64.Vec3

	// IsLoop reports whether t=1 joins t=0
	IsLoop() bool

	// AdvanceByArcLength moves t so that the traversed distance approximates delta
	// Negative delta moves toward 0. The returned parameter is not wrapped
	AdvanceByArcLength(t, delta float64) (float64, mgl64.Vec3)
}

// NormalizeParam maps t into [0,1] the way a Provider interprets it
func NormalizeParam(t float64, loop bool) float64 {
	if loop {
		return vmath.Repeat(t, 1)
	}
	return mgl64.Clamp(t, 0, 1)
}

// Length approximates the arc length by summing chords over the given sample count
func Length(p Provider, samples int) float64 {
	if samples < 1 {
		samples = 1
	}
	var total float64
	prev := p.Point(0)
	for i := 1; i <= samples; i++ {
		next := p.Point(float64(i) / float64(samples))
		total += next.Sub(prev).Len()
		prev = next
	}
	return total
}

// stepArcLength splits delta into accuracy sub-steps, each scaled by the local speed of the curve
// Stops early where the tangent vanishes
func stepArcLength(tangent func(float64) mgl64.Vec3, t, delta float64, accuracy int) float64 {
	for i := 0; i < accuracy; i++ {
		speed := tangent(t).Len()
		if speed < parameter.CurveMinTangentLength || math.IsNaN(speed) {
			break
		}
		t += delta / (float64(accuracy) * speed)
	}
	return t
}
