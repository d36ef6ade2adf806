package curve

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/vr-coaster/parameter"
)

// ControlPoint is a spline knot with absolute handle positions
// In shapes the segment arriving at the knot, Out the segment leaving it
type ControlPoint struct {
	Position mgl64.Vec3
	In       mgl64.Vec3
	Out      mgl64.Vec3
}

// BezierSpline is a chain of cubic segments, one per consecutive knot pair
// A looped spline adds a closing segment from the last knot to the first
type BezierSpline struct {
	points   []ControlPoint
	loop     bool
	accuracy int
}

// NewBezierSpline copies the knots and validates the knot count
func NewBezierSpline(points []ControlPoint, loop bool) (*BezierSpline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("bezier spline with %d points: %w", len(points), ErrNoControlPoints)
	}
	cp := make([]ControlPoint, len(points))
	copy(cp, points)
	return &BezierSpline{
		points:   cp,
		loop:     loop,
		accuracy: parameter.CurveArcLengthAccuracy,
	}, nil
}

// NewAutoSpline builds a spline through positions with handles placed along the neighbour chord
// smoothness scales handle length relative to the adjacent chord
func NewAutoSpline(positions []mgl64.Vec3, loop bool, smoothness float64) (*BezierSpline, error) {
	return NewBezierSpline(AutoHandles(positions, loop, smoothness), loop)
}

// AutoHandles derives In/Out handles for each position
// Open ends use the single available neighbour
func AutoHandles(positions []mgl64.Vec3, loop bool, smoothness float64) []ControlPoint {
	n := len(positions)
	out := make([]ControlPoint, n)
	for i, p := range positions {
		prev, next := p, p
		switch {
		case loop:
			prev = positions[(i-1+n)%n]
			next = positions[(i+1)%n]
		default:
			if i > 0 {
				prev = positions[i-1]
			}
			if i < n-1 {
				next = positions[i+1]
			}
		}
		dir := next.Sub(prev)
		if dir.Len() == 0 {
			out[i] = ControlPoint{Position: p, In: p, Out: p}
			continue
		}
		dir = dir.Normalize()
		inLen := p.Sub(prev).Len() * smoothness / 1.5
		outLen := next.Sub(p).Len() * smoothness / 1.5
		out[i] = ControlPoint{
			Position: p,
			In:       p.Sub(dir.Mul(inLen)),
			Out:      p.Add(dir.Mul(outLen)),
		}
	}
	return out
}

// SetAccuracy changes the arc length sub-step count
func (s *BezierSpline) SetAccuracy(n int) error {
	if n < 1 {
		return ErrBadAccuracy
	}
	s.accuracy = n
	return nil
}

func (s *BezierSpline) IsLoop() bool { return s.loop }

func (s *BezierSpline) segments() int {
	if s.loop {
		return len(s.points)
	}
	return len(s.points) - 1
}

// locate maps a global parameter to a segment index and local parameter
func (s *BezierSpline) locate(t float64) (int, float64) {
	t = NormalizeParam(t, s.loop)
	n := s.segments()
	x := t * float64(n)
	i := int(math.Floor(x))
	if i >= n {
		i = n - 1
	}
	return i, x - float64(i)
}

func (s *BezierSpline) controls(i int) (p0, p1, p2, p3 mgl64.Vec3) {
	a := s.points[i]
	b := s.points[(i+1)%len(s.points)]
	return a.Position, a.Out, b.In, b.Position
}

func (s *BezierSpline) Point(t float64) mgl64.Vec3 {
	i, u := s.locate(t)
	p0, p1, p2, p3 := s.controls(i)
	v := 1 - u
	return p0.Mul(v * v * v).
		Add(p1.Mul(3 * v * v * u)).
		Add(p2.Mul(3 * v * u * u)).
		Add(p3.Mul(u * u * u))
}

// Tangent is the derivative with respect to the global parameter
func (s *BezierSpline) Tangent(t float64) mgl64.Vec3 {
	i, u := s.locate(t)
	p0, p1, p2, p3 := s.controls(i)
	v := 1 - u
	d := p1.Sub(p0).Mul(3 * v * v).
		Add(p2.Sub(p1).Mul(6 * v * u)).
		Add(p3.Sub(p2).Mul(3 * u * u))
	return d.Mul(float64(s.segments()))
}

func (s *BezierSpline) AdvanceByArcLength(t, delta float64) (float64, mgl64.Vec3) {
	t = stepArcLength(s.Tangent, t, delta, s.accuracy)
	return t, s.Point(t)
}
