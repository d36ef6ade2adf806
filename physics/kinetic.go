package physics

import "github.com/go-gl/mathgl/mgl64"

// Kinetic is the position and velocity of a free body
type Kinetic struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

// Integrate performs explicit Euler integration: p = p + v*dt
func Integrate(k *Kinetic, dt float64) mgl64.Vec3 {
	k.Position = k.Position.Add(k.Velocity.Mul(dt))
	return k.Position
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *Kinetic, dv mgl64.Vec3) {
	k.Velocity = k.Velocity.Add(dv)
}
