// Package speed ramps the car speed between three modes as zone triggers are crossed
package speed

import (
	"log"
	"time"

	"github.com/lixenwraith/vr-coaster/parameter"
)

// CrossFader switches the ride soundtrack; audio.Player satisfies it
type CrossFader interface {
	CrossFade(clip string, maxVolume float64, fade time.Duration) error
}

// Clips names the soundtrack clip played in each mode
type Clips struct {
	Fast   string
	Normal string
	Slow   string
}

// Config holds the speed of each mode and the ramp rate, all in world units per second
type Config struct {
	Normal       float64
	Drop         float64
	ClimbUp      float64
	Acceleration float64
	Clips        Clips
	FadeVolume   float64
	FadeTime     time.Duration
}

// DefaultConfig returns the stock ride speeds
func DefaultConfig() Config {
	return Config{
		Normal:       parameter.SpeedNormal,
		Drop:         parameter.SpeedDrop,
		ClimbUp:      parameter.SpeedClimbUp,
		Acceleration: parameter.SpeedAcceleration,
		Clips:        Clips{Fast: "fast", Normal: "normal", Slow: "slow"},
		FadeVolume:   parameter.AudioCrossFadeVolume,
		FadeTime:     parameter.AudioCrossFadeTime,
	}
}

// Controller ramps speed linearly toward the target of the current mode
// The ramp stops on the first update that reaches or passes the target, without clamping
type Controller struct {
	cfg      Config
	fader    CrossFader
	speed    float64
	mode     Mode
	previous Mode
	ramping  bool
	dir      float64 // +1 accelerating, -1 braking
	reached  []func(Mode, float64)
}

// NewController starts at normal speed with the normal clip fading in; fader may be nil
func NewController(cfg Config, fader CrossFader) *Controller {
	c := &Controller{
		cfg:      cfg,
		fader:    fader,
		speed:    cfg.Normal,
		mode:     ModeNormal,
		previous: ModeNormal,
	}
	c.crossFade(ModeNormal)
	return c
}

// OnTargetReached registers a listener called when a ramp completes
func (c *Controller) OnTargetReached(fn func(Mode, float64)) {
	c.reached = append(c.reached, fn)
}

// Enter switches to the mode bound to tag and starts ramping toward its speed
// Re-entering the current mode retargets immediately at the same rate
func (c *Controller) Enter(tag string) error {
	m, err := ModeForTag(tag)
	if err != nil {
		log.Printf("speed: trigger enter: %v", err)
		return err
	}
	c.previous = c.mode
	c.mode = m
	c.crossFade(m)

	target := c.Target()
	switch {
	case target > c.speed:
		c.dir = 1
	case target < c.speed:
		c.dir = -1
	default:
		c.ramping = false
		return nil
	}
	c.ramping = true
	return nil
}

// Exit is informational; the mode persists until the next trigger
func (c *Controller) Exit(tag string) {
	log.Printf("speed: trigger exit %q at %.2f", tag, c.speed)
}

// Update advances the ramp by dt seconds and returns the current speed
func (c *Controller) Update(dt float64) float64 {
	if !c.ramping {
		return c.speed
	}

	c.speed += c.dir * c.cfg.Acceleration * dt
	if (c.speed-c.Target())*c.dir >= 0 {
		c.finish()
	}
	return c.speed
}

func (c *Controller) finish() {
	c.ramping = false
	for _, fn := range c.reached {
		fn(c.mode, c.speed)
	}
}

// Target returns the speed of the current mode
func (c *Controller) Target() float64 {
	return c.speedFor(c.mode)
}

func (c *Controller) speedFor(m Mode) float64 {
	switch m {
	case ModeDrop:
		return c.cfg.Drop
	case ModeClimbUp:
		return c.cfg.ClimbUp
	default:
		return c.cfg.Normal
	}
}

func (c *Controller) crossFade(m Mode) {
	if c.fader == nil {
		return
	}
	clip := c.cfg.Clips.Normal
	switch m {
	case ModeDrop:
		clip = c.cfg.Clips.Fast
	case ModeClimbUp:
		clip = c.cfg.Clips.Slow
	}
	if err := c.fader.CrossFade(clip, c.cfg.FadeVolume, c.cfg.FadeTime); err != nil {
		log.Printf("speed: crossfade to %q: %v", clip, err)
	}
}

// Speed returns the current speed
func (c *Controller) Speed() float64 { return c.speed }

// Mode returns the current mode
func (c *Controller) Mode() Mode { return c.mode }

// Previous returns the mode active before the last trigger
func (c *Controller) Previous() Mode { return c.previous }

// Ramping reports whether the speed is still moving toward the target
func (c *Controller) Ramping() bool { return c.ramping }
