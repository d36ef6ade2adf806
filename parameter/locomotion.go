package parameter

// Avatar locomotion, tuned against a 60 Hz reference simulation rate
const (
	LocomotionAcceleration    = 0.1
	LocomotionDamping         = 0.3
	LocomotionGravityModifier = 0.379
	LocomotionGravityScale    = 0.002 // Applied to gravity when resetting fall speed on ground
	LocomotionSimulationRate  = 60.0
	LocomotionRunMultiplier   = 2.0
	LocomotionAxisDeadZone    = 0.1
	LocomotionGroundedEpsilon = 0.001
)

// Avatar rotation
const (
	// LocomotionRotationAmount is degrees per reference frame for smooth turning
	LocomotionRotationAmount = 1.5

	// LocomotionRotationRatchet is degrees per snap turn
	LocomotionRotationRatchet = 45.0

	// LocomotionMinRotationAnimation is the floor applied to animated snap speed
	LocomotionMinRotationAnimation = 3.0

	// LocomotionRotationAnimation is the default snap animation speed, 0 disables animation
	LocomotionRotationAnimation = 0.0

	// LocomotionMouseRotationScale amplifies mouse X against stick rotation
	LocomotionMouseRotationScale = 3.25
)

// World
const (
	Gravity = -9.81

	// CharacterStepOffset is the maximum stair height a mover climbs without jumping
	CharacterStepOffset = 0.3
)
