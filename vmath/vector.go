package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis vectors in a left-handed, Y-up, Z-forward frame
var (
	Right   = mgl64.Vec3{1, 0, 0}
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
)

// NormalizeEpsilon is the length below which vectors normalize to zero
const NormalizeEpsilon = 1e-5

// Unit returns v scaled to length 1, or the zero vector if |v| <= eps
// mgl64 Normalize divides by zero on degenerate input
func Unit(v mgl64.Vec3, eps float64) mgl64.Vec3 {
	l := v.Len()
	if l <= eps {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Normalized is Unit with the default epsilon
func Normalized(v mgl64.Vec3) mgl64.Vec3 {
	return Unit(v, NormalizeEpsilon)
}

// ClampMagnitude returns v with its length capped at maxLen, direction preserved
func ClampMagnitude(v mgl64.Vec3, maxLen float64) mgl64.Vec3 {
	sq := v.LenSqr()
	if sq <= maxLen*maxLen {
		return v
	}
	return v.Mul(maxLen / math.Sqrt(sq))
}

// FlattenY projects v onto the XZ plane
func FlattenY(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// IsFinite reports whether every component is a finite number
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Sign returns 1 for non-negative x and -1 otherwise, matching engine float sign semantics
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// NearlyEqual compares component-wise with an absolute tolerance
func NearlyEqual(a, b mgl64.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
