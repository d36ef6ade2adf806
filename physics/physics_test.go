package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/vr-coaster/vmath"
	"github.com/stretchr/testify/assert"
)

func TestIntegrateAndCap(t *testing.T) {
	k := &Kinetic{Velocity: mgl64.Vec3{3, 0, 4}}
	assert.True(t, CapSpeed(k, 1))
	assert.InDelta(t, 1, k.Velocity.Len(), 1e-12)
	assert.False(t, CapSpeed(k, 2))

	Integrate(k, 0.5)
	assert.True(t, vmath.NearlyEqual(k.Position, mgl64.Vec3{0.3, 0, 0.4}, 1e-12))
}

func TestFallSpeed(t *testing.T) {
	// Grounded resets to one step regardless of accumulated speed
	assert.InDelta(t, -1.0, FallSpeed(-50, -10, 0.1, 60, 1.0/60, true), 1e-12)
	// Airborne accumulates at the reference rate
	assert.InDelta(t, -2.0, FallSpeed(-1, -10, 0.1, 60, 1.0/60, false), 1e-12)
	// Rising body on the ground keeps accumulating
	assert.InDelta(t, 0.5, FallSpeed(1.5, -10, 0.1, 60, 1.0/60, true), 1e-12)
}

func TestCharacter_FloorAndBounds(t *testing.T) {
	c := NewCharacter(mgl64.Vec3{0, 1, 0}, 0, 0.3)
	assert.False(t, c.Grounded())

	c.Move(mgl64.Vec3{0, -5, 0})
	assert.True(t, c.Grounded())
	assert.Equal(t, 0.0, c.Position()[1])

	c.SetBounds(&Bounds{MinX: -1, MinZ: -1, MaxX: 1, MaxZ: 1})
	c.Move(mgl64.Vec3{3, 0, 0.5})
	assert.True(t, vmath.NearlyEqual(c.Position(), mgl64.Vec3{1, 0, 0.5}, 1e-12))
	assert.Equal(t, 2, c.Moves())
}
