package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// LookRotation returns the rotation mapping +Z to forward and keeping +Y as close to up as possible
// Parallel forward and up fall back to the shortest arc from +Z
// A zero forward yields identity
func LookRotation(forward, up mgl64.Vec3) mgl64.Quat {
	z := Normalized(forward)
	if z == (mgl64.Vec3{}) {
		return mgl64.QuatIdent()
	}
	x := Normalized(up.Cross(z))
	if x == (mgl64.Vec3{}) {
		return mgl64.QuatBetweenVectors(Forward, z)
	}
	y := z.Cross(x)
	m := mgl64.Mat3FromCols(x, y, z).Mat4()
	return mgl64.Mat4ToQuat(m).Normalize()
}

// LerpRotation blends a toward b along the shorter arc, amount clamped to [0,1]
func LerpRotation(a, b mgl64.Quat, amount float64) mgl64.Quat {
	amount = mgl64.Clamp(amount, 0, 1)
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatNlerp(a, b, amount)
}

// YawRotation returns a rotation of deg degrees about +Y, positive turns +Z toward +X
func YawRotation(deg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), Up)
}

// Yaw returns the heading of q in degrees within [0,360)
func Yaw(q mgl64.Quat) float64 {
	f := q.Rotate(Forward)
	return Repeat(mgl64.RadToDeg(math.Atan2(f[0], f[2])), 360)
}

// Repeat wraps x into [0,length)
func Repeat(x, length float64) float64 {
	r := math.Mod(x, length)
	if r < 0 {
		r += length
	}
	return r
}

// AngleDifference returns a-b in degrees, wrapped into (-180,180]
func AngleDifference(a, b float64) float64 {
	diff := Repeat(a-b, 360)
	if diff > 180 {
		diff -= 360
	}
	return diff
}

// AxisRight returns the local +X axis of q in world space
func AxisRight(q mgl64.Quat) mgl64.Vec3 { return q.Rotate(Right) }

// AxisUp returns the local +Y axis of q in world space
func AxisUp(q mgl64.Quat) mgl64.Vec3 { return q.Rotate(Up) }

// AxisForward returns the local +Z axis of q in world space
func AxisForward(q mgl64.Quat) mgl64.Vec3 { return q.Rotate(Forward) }
