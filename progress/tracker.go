// Package progress moves a rider along a curve and resolves what happens at its ends
package progress

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/vr-coaster/curve"
	"github.com/lixenwraith/vr-coaster/parameter"
	"github.com/lixenwraith/vr-coaster/vmath"
)

// Config is immutable for the lifetime of a Tracker
type Config struct {
	RelaxationBand   float64
	Mode             TravelMode
	LookForward      bool
	RotationLerpRate float64
}

// DefaultConfig returns the ride defaults in Loop mode
func DefaultConfig() Config {
	return Config{
		RelaxationBand:   parameter.RideRelaxationBand,
		Mode:             Loop,
		LookForward:      parameter.RideLookForward,
		RotationLerpRate: parameter.RideRotationLerpRate,
	}
}

// Validate checks mode and band
func (c Config) Validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("mode %d: %w", int(c.Mode), ErrUnknownTravelMode)
	}
	if c.RelaxationBand < 0 || c.RelaxationBand >= 0.5 {
		return fmt.Errorf("band %v: %w", c.RelaxationBand, ErrBadRelaxation)
	}
	return nil
}

// Completion is delivered to listeners when the car enters an endpoint band
type Completion struct {
	Endpoint  Endpoint
	Mode      TravelMode
	Parameter float64 // Parameter at arrival, before wrap or reflection
}

// Step is the tracker state after one Advance
type Step struct {
	Parameter     float64
	Position      mgl64.Vec3
	Rotation      mgl64.Quat
	MovingForward bool
	Completed     bool
}

// Tracker owns the curve parameter, direction flag and endpoint latches of one rider
// Not safe for concurrent use
type Tracker struct {
	curve curve.Provider
	cfg   Config

	progress float64
	forward  bool
	atZero   BandState
	atOne    BandState

	position mgl64.Vec3
	rotation mgl64.Quat

	listeners []func(Completion)
}

// NewTracker places the rider at parameter 0 facing along the curve
// A nil curve is tolerated with a warning, Advance then holds the last state
func NewTracker(c curve.Provider, cfg Config) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &Tracker{
		curve:    c,
		cfg:      cfg,
		forward:  true,
		rotation: mgl64.QuatIdent(),
	}
	if c == nil {
		log.Printf("progress: no curve attached, rider will not move")
		return t, nil
	}
	t.position = c.Point(0)
	t.rotation = vmath.LookRotation(c.Tangent(0), vmath.Up)
	return t, nil
}

// OnCompleted registers fn, called synchronously from Advance
func (t *Tracker) OnCompleted(fn func(Completion)) {
	t.listeners = append(t.listeners, fn)
}

// Advance moves the rider by speed*dt along the curve, speed signed relative to the direction flag
func (t *Tracker) Advance(speed, dt float64) Step {
	if t.curve == nil {
		return t.snapshot((speed > 0) == t.forward, false)
	}

	effective := speed
	if !t.forward {
		effective = -speed
	}
	t.progress, t.position = t.curve.AdvanceByArcLength(t.progress, effective*dt)

	movingForward := (speed > 0) == t.forward

	if t.cfg.LookForward {
		tangent := t.curve.Tangent(t.progress)
		if !movingForward {
			tangent = tangent.Mul(-1)
		}
		target := vmath.LookRotation(tangent, vmath.Up)
		t.rotation = vmath.LerpRotation(t.rotation, target, t.cfg.RotationLerpRate*dt)
	}

	completed := t.resolveBoundary(movingForward)
	return t.snapshot(movingForward, completed)
}

// resolveBoundary runs the latch for the endpoint in the direction of travel and applies the travel mode
func (t *Tracker) resolveBoundary(movingForward bool) bool {
	band := t.cfg.RelaxationBand
	arrival := t.progress

	var inBand bool
	var edge BandEdge
	var endpoint Endpoint
	if movingForward {
		endpoint = EndpointOne
		inBand = t.progress >= 1-band
		t.atOne, edge = t.atOne.evaluate(inBand)
	} else {
		endpoint = EndpointZero
		inBand = t.progress <= band
		t.atZero, edge = t.atZero.evaluate(inBand)
	}

	if edge == EdgeEntered {
		t.emit(Completion{Endpoint: endpoint, Mode: t.cfg.Mode, Parameter: arrival})
	}
	if !inBand {
		return false
	}

	switch t.cfg.Mode {
	case Once:
		if endpoint == EndpointOne {
			t.progress = 1
		} else {
			t.progress = 0
		}
	case Loop:
		if endpoint == EndpointOne {
			t.progress -= 1
		} else {
			t.progress += 1
		}
	case PingPong:
		if endpoint == EndpointOne {
			t.progress = 2 - t.progress
		} else {
			t.progress = -t.progress
		}
		t.forward = !t.forward
	}

	t.containOvershoot(arrival)
	return edge == EdgeEntered
}

// containOvershoot handles a single step longer than the curve
// Loop wraps modulo 1, other modes clamp, reflection never repeats within a tick
func (t *Tracker) containOvershoot(arrival float64) {
	band := t.cfg.RelaxationBand + parameter.RideOvershootEpsilon
	if t.progress >= -band && t.progress <= 1+band {
		return
	}
	before := t.progress
	if t.cfg.Mode == Loop {
		t.progress = vmath.Repeat(t.progress, 1)
	} else {
		t.progress = mgl64.Clamp(t.progress, 0, 1)
	}
	log.Printf("progress: step overshot curve (arrived %.4f, resolved %.4f), %s mode clamped to %.4f",
		arrival, before, t.cfg.Mode, t.progress)
}

func (t *Tracker) emit(c Completion) {
	for _, fn := range t.listeners {
		fn(c)
	}
}

func (t *Tracker) snapshot(movingForward, completed bool) Step {
	return Step{
		Parameter:     t.progress,
		Position:      t.position,
		Rotation:      t.rotation,
		MovingForward: movingForward,
		Completed:     completed,
	}
}

// Progress returns the current curve parameter
func (t *Tracker) Progress() float64 { return t.progress }

// Forward returns the direction flag
func (t *Tracker) Forward() bool { return t.forward }

// Mode returns the configured travel mode
func (t *Tracker) Mode() TravelMode { return t.cfg.Mode }

// Position returns the last position written by Advance
func (t *Tracker) Position() mgl64.Vec3 { return t.position }

// Rotation returns the current orientation
func (t *Tracker) Rotation() mgl64.Quat { return t.rotation }

// Band returns the latch state of an endpoint
func (t *Tracker) Band(e Endpoint) BandState {
	if e == EndpointOne {
		return t.atOne
	}
	return t.atZero
}

// Reset places the rider at p moving forward with both latches cleared
func (t *Tracker) Reset(p float64) {
	t.progress = p
	t.forward = true
	t.atZero, t.atOne = BandClear, BandClear
	if t.curve != nil {
		t.position = t.curve.Point(p)
		t.rotation = vmath.LookRotation(t.curve.Tangent(p), vmath.Up)
	}
}
