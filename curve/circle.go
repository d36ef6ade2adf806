package curve

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Circle is a closed curve in the XZ plane, one revolution per unit parameter
// Starts on +Z and travels toward +X
type Circle struct {
	Center mgl64.Vec3
	Radius float64
}

func (c Circle) Point(t float64) mgl64.Vec3 {
	a := 2 * math.Pi * NormalizeParam(t, true)
	return c.Center.Add(mgl64.Vec3{math.Sin(a), 0, math.Cos(a)}.Mul(c.Radius))
}

func (c Circle) Tangent(t float64) mgl64.Vec3 {
	a := 2 * math.Pi * NormalizeParam(t, true)
	return mgl64.Vec3{math.Cos(a), 0, -math.Sin(a)}.Mul(2 * math.Pi * c.Radius)
}

func (c Circle) IsLoop() bool { return true }

func (c Circle) AdvanceByArcLength(t, delta float64) (float64, mgl64.Vec3) {
	t = stepArcLength(c.Tangent, t, delta, 1)
	return t, c.Point(t)
}
