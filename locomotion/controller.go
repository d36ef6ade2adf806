// Package locomotion moves a VR avatar with throttle damping, gravity and snap or smooth turning
package locomotion

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/vr-coaster/physics"
	"github.com/lixenwraith/vr-coaster/vmath"
)

// Mover is a move-and-collide body; physics.Character satisfies it
type Mover interface {
	Move(delta mgl64.Vec3)
	Position() mgl64.Vec3
	Grounded() bool
	StepOffset() float64
}

// Controller converts controls into body movement and yaw
// Throttle is in world units per reference frame and decays by the damping factor each tick
type Controller struct {
	cfg   Config
	mover Mover

	yaw        float64 // Body heading in degrees
	initialYaw float64
	throttle   mgl64.Vec3
	fall       float64
	pending    float64 // Turning not yet applied, degrees
	targetYaw  float64
	animating  bool
	halted     bool

	warnedMover bool
	warnedHead  bool
}

// NewController binds a body; a nil mover leaves the controller inert with a warning
func NewController(cfg Config, mover Mover, yaw float64) *Controller {
	c := &Controller{
		cfg:        cfg,
		mover:      mover,
		yaw:        vmath.Repeat(yaw, 360),
		initialYaw: vmath.Repeat(yaw, 360),
	}
	if mover == nil {
		log.Printf("locomotion: no mover attached")
		c.warnedMover = true
	}
	return c
}

// Tick applies one frame of input
func (c *Controller) Tick(in Input, dt float64) {
	if c.mover == nil {
		if !c.warnedMover {
			log.Printf("locomotion: no mover attached")
			c.warnedMover = true
		}
		return
	}
	if dt <= 0 {
		return
	}

	if !c.halted {
		c.updateMovement(in, dt)
	}

	frames := c.cfg.SimulationRate * dt

	c.throttle[0] = physics.Damp(c.throttle[0], c.cfg.Damping, c.cfg.SimulationRate, dt)
	if c.cfg.EnableFreeMovement || c.throttle[1] > 0 {
		c.throttle[1] = physics.Damp(c.throttle[1], c.cfg.Damping, c.cfg.SimulationRate, dt)
	}
	c.throttle[2] = physics.Damp(c.throttle[2], c.cfg.Damping, c.cfg.SimulationRate, dt)

	move := c.throttle.Mul(frames)

	grounded := c.mover.Grounded()
	c.fall = physics.FallSpeed(c.fall, c.cfg.Gravity, c.cfg.GravityModifier*c.cfg.GravityScale, c.cfg.SimulationRate, dt, grounded)
	move[1] += c.fall * frames

	// Push into the ground so slopes and steps keep the body grounded
	if grounded && c.throttle[1] <= c.cfg.GroundedEpsilon {
		bump := math.Max(c.mover.StepOffset(), vmath.FlattenY(move).Len())
		move[1] -= bump
	}

	start := c.mover.Position()
	predicted := vmath.FlattenY(start.Add(move))
	c.mover.Move(move)
	actual := vmath.FlattenY(c.mover.Position())

	// Collisions bleed into the throttle so the body does not keep pushing into walls
	if predicted != actual {
		c.throttle = c.throttle.Add(actual.Sub(predicted).Mul(1 / frames))
	}
}

func (c *Controller) updateMovement(in Input, dt float64) {
	frames := c.cfg.SimulationRate * dt

	moveScale := 1.0
	if !c.cfg.EnableFreeMovement && !c.mover.Grounded() {
		moveScale = 0
	}
	moveScale *= frames

	direction := c.direction(in)
	yaw := vmath.Repeat(c.yaw, 360)

	stepLeft := in.StepLeft
	stepRight := in.StepRight

	rotateInfluence := frames * c.cfg.RotationAmount * c.cfg.RotationScaleMultiplier
	if !c.cfg.SkipMouseRotation {
		c.pending += in.MouseX * rotateInfluence * c.cfg.MouseRotationScale
	}
	c.pending += c.deadZone(in.Turn) * rotateInfluence

	if c.cfg.RotationSnap {
		if math.Abs(c.pending) > c.cfg.RotationRatchet {
			if c.pending > 0 {
				stepRight = true
			} else {
				stepLeft = true
			}
			c.pending -= vmath.Sign(c.pending) * c.cfg.RotationRatchet
		}
	} else {
		yaw += c.pending
		c.pending = 0
	}

	if c.cfg.RotationAnimation > 0 && c.animating {
		speed := math.Max(c.cfg.RotationAnimation, c.cfg.MinRotationAnimation)
		diff := vmath.AngleDifference(c.targetYaw, yaw)
		yaw += vmath.Sign(diff) * speed * dt
		if (vmath.AngleDifference(c.targetYaw, yaw) < 0) != (diff < 0) {
			c.animating = false
			yaw = c.targetYaw
		}
	}

	if stepLeft != stepRight {
		change := -c.cfg.RotationRatchet
		if stepRight {
			change = c.cfg.RotationRatchet
		}
		if c.cfg.RotationAnimation > 0 {
			c.targetYaw = math.Mod(yaw+change, 360)
			c.animating = true
		} else {
			yaw += change
		}
	}

	moveInfluence := frames * c.cfg.Acceleration * 0.1 * moveScale * c.cfg.MoveScaleMultiplier
	if in.Run {
		moveInfluence *= c.cfg.RunMultiplier
	}

	x := c.deadZone(in.Move[0])
	y := c.deadZone(in.Move[1])
	if in.Forward {
		y = 1
	}
	if in.Left {
		x = -1
	}
	if in.Right {
		x = 1
	}
	if in.Back {
		y = -1
	}

	if y > 0 {
		c.throttle = c.throttle.Add(direction.Rotate(vmath.Forward).Mul(moveInfluence * y))
	}
	if y < 0 {
		c.throttle = c.throttle.Add(direction.Rotate(vmath.Forward.Mul(-1)).Mul(moveInfluence * -y))
	}
	if x < 0 {
		c.throttle = c.throttle.Add(direction.Rotate(vmath.Right.Mul(-1)).Mul(moveInfluence * -x))
	}
	if x > 0 {
		c.throttle = c.throttle.Add(direction.Rotate(vmath.Right).Mul(moveInfluence * x))
	}

	c.yaw = yaw
}

// direction is the frame throttle is accumulated in: head or body, yaw only unless moving freely
func (c *Controller) direction(in Input) mgl64.Quat {
	rot := vmath.YawRotation(c.yaw)
	if c.cfg.HmdRotatesY {
		if in.Head != nil {
			rot = *in.Head
		} else if !c.warnedHead {
			log.Printf("locomotion: head pose unavailable, steering by body")
			c.warnedHead = true
		}
	}
	if c.cfg.EnableFreeMovement {
		return rot
	}
	return vmath.YawRotation(vmath.Yaw(rot))
}

func (c *Controller) deadZone(v float64) float64 {
	if math.Abs(v) < c.cfg.AxisDeadZone {
		return 0
	}
	return v
}

// SetRotationSnap switches between ratchet and smooth turning
func (c *Controller) SetRotationSnap(on bool) {
	c.cfg.RotationSnap = on
	c.pending = 0
}

// SetRotationAnimation sets the snap animation speed in degrees per second
func (c *Controller) SetRotationAnimation(speed float64) {
	c.cfg.RotationAnimation = speed
	c.pending = 0
}

// ResetOrientation restores the starting yaw when the headset recenter also resets yaw
func (c *Controller) ResetOrientation() {
	if c.cfg.HmdResetsY {
		c.yaw = c.initialYaw
	}
}

// SetHalt suspends control input; gravity and damping keep running
func (c *Controller) SetHalt(halt bool) { c.halted = halt }

// Position returns the body position, zero without a mover
func (c *Controller) Position() mgl64.Vec3 {
	if c.mover == nil {
		return mgl64.Vec3{}
	}
	return c.mover.Position()
}

// Yaw returns the body heading in degrees within [0,360)
func (c *Controller) Yaw() float64 { return vmath.Repeat(c.yaw, 360) }

// Rotation returns the body orientation
func (c *Controller) Rotation() mgl64.Quat { return vmath.YawRotation(c.yaw) }

func (c *Controller) Throttle() mgl64.Vec3 { return c.throttle }

func (c *Controller) FallSpeed() float64 { return c.fall }

func (c *Controller) PendingRotation() float64 { return c.pending }

func (c *Controller) Animating() bool { return c.animating }
