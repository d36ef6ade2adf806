package physics

import "math"

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(k *Kinetic, maxSpeed float64) bool {
	magSq := k.Velocity.LenSqr()
	if magSq <= maxSpeed*maxSpeed {
		return false
	}
	mag := math.Sqrt(magSq)
	if mag == 0 {
		return false
	}
	k.Velocity = k.Velocity.Mul(maxSpeed / mag)
	return true
}

// Damp divides v by the motor damping factor for one step at the reference rate
func Damp(v, damping, rate, dt float64) float64 {
	return v / (1 + damping*rate*dt)
}

// FallSpeed advances the vertical fall speed of a character
// On the ground a non-rising body restarts from a single step of gravity
func FallSpeed(current, gravityY, modifier, rate, dt float64, grounded bool) float64 {
	step := gravityY * modifier
	if grounded && current <= 0 {
		return step
	}
	return current + step*rate*dt
}
