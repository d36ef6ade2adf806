package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds is an axis-aligned walkable area on the XZ plane
type Bounds struct {
	MinX, MinZ, MaxX, MaxZ float64
}

// Contains reports whether p lies inside b on the XZ plane
func (b Bounds) Contains(p mgl64.Vec3) bool {
	return p[0] >= b.MinX && p[0] <= b.MaxX && p[2] >= b.MinZ && p[2] <= b.MaxZ
}

// Character is a capsule-less move-and-collide body over a flat floor
// Movement below the floor stops at the floor, movement outside Bounds slides along the wall
type Character struct {
	position   mgl64.Vec3
	floor      float64
	stepOffset float64
	bounds     *Bounds
	grounded   bool
	moves      int
}

// NewCharacter places a character at pos over a floor at height floor
func NewCharacter(pos mgl64.Vec3, floor, stepOffset float64) *Character {
	c := &Character{position: pos, floor: floor, stepOffset: stepOffset}
	c.grounded = pos[1] <= floor
	return c
}

// SetBounds confines horizontal movement, nil removes the constraint
func (c *Character) SetBounds(b *Bounds) {
	c.bounds = b
}

// Move applies delta, resolving floor and wall contacts
func (c *Character) Move(delta mgl64.Vec3) {
	next := c.position.Add(delta)
	c.grounded = false
	if next[1] <= c.floor {
		next[1] = c.floor
		c.grounded = true
	}
	if c.bounds != nil {
		next[0] = math.Max(c.bounds.MinX, math.Min(c.bounds.MaxX, next[0]))
		next[2] = math.Max(c.bounds.MinZ, math.Min(c.bounds.MaxZ, next[2]))
	}
	c.position = next
	c.moves++
}

func (c *Character) Position() mgl64.Vec3 { return c.position }

func (c *Character) Grounded() bool { return c.grounded }

func (c *Character) StepOffset() float64 { return c.stepOffset }

// Moves returns the number of Move calls, used to confirm a controller drove the body
func (c *Character) Moves() int { return c.moves }
