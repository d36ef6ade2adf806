package curve

import "github.com/go-gl/mathgl/mgl64"

// Line is a straight open curve of constant speed
type Line struct {
	From, To mgl64.Vec3
}

func (l Line) Point(t float64) mgl64.Vec3 {
	t = NormalizeParam(t, false)
	return l.From.Add(l.To.Sub(l.From).Mul(t))
}

func (l Line) Tangent(float64) mgl64.Vec3 { return l.To.Sub(l.From) }

func (l Line) IsLoop() bool { return false }

// AdvanceByArcLength is exact on a line
func (l Line) AdvanceByArcLength(t, delta float64) (float64, mgl64.Vec3) {
	t = stepArcLength(l.Tangent, t, delta, 1)
	return t, l.Point(t)
}
