package locomotion

import "github.com/lixenwraith/vr-coaster/parameter"

// Config tunes the avatar; rates are expressed per reference frame at SimulationRate
type Config struct {
	Acceleration            float64
	Damping                 float64
	GravityModifier         float64
	GravityScale            float64
	Gravity                 float64
	SimulationRate          float64
	RunMultiplier           float64
	AxisDeadZone            float64
	GroundedEpsilon         float64
	MoveScaleMultiplier     float64
	RotationAmount          float64
	RotationScaleMultiplier float64
	RotationRatchet         float64
	RotationSnap            bool
	RotationAnimation       float64 // Degrees per second for animated snaps, 0 snaps instantly
	MinRotationAnimation    float64
	MouseRotationScale      float64
	SkipMouseRotation       bool
	EnableFreeMovement      bool
	HmdRotatesY             bool
	HmdResetsY              bool
}

// DefaultConfig mirrors the stock headset controller tuning
func DefaultConfig() Config {
	return Config{
		Acceleration:            parameter.LocomotionAcceleration,
		Damping:                 parameter.LocomotionDamping,
		GravityModifier:         parameter.LocomotionGravityModifier,
		GravityScale:            parameter.LocomotionGravityScale,
		Gravity:                 parameter.Gravity,
		SimulationRate:          parameter.LocomotionSimulationRate,
		RunMultiplier:           parameter.LocomotionRunMultiplier,
		AxisDeadZone:            parameter.LocomotionAxisDeadZone,
		GroundedEpsilon:         parameter.LocomotionGroundedEpsilon,
		MoveScaleMultiplier:     1,
		RotationAmount:          parameter.LocomotionRotationAmount,
		RotationScaleMultiplier: 1,
		RotationRatchet:         parameter.LocomotionRotationRatchet,
		RotationAnimation:       parameter.LocomotionRotationAnimation,
		MinRotationAnimation:    parameter.LocomotionMinRotationAnimation,
		MouseRotationScale:      parameter.LocomotionMouseRotationScale,
		SkipMouseRotation:       true,
		HmdRotatesY:             true,
	}
}
