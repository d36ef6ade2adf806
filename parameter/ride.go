package parameter

// Car progress along the track
const (
	// RideRelaxationBand is the parameter distance from an endpoint counted as arrival
	RideRelaxationBand = 0.01

	// RideRotationLerpRate scales the per-second orientation blend toward the tangent
	RideRotationLerpRate = 10.0

	// RideLookForward orients the car along the curve tangent
	RideLookForward = true

	// RideOvershootEpsilon tolerates float noise before an out-of-range parameter is clamped
	RideOvershootEpsilon = 1e-9
)

// Arc-length stepping
const (
	// CurveArcLengthAccuracy is the sub-step count used when advancing by arc length
	CurveArcLengthAccuracy = 3

	// CurveMinTangentLength below which the curve is considered degenerate at a parameter
	CurveMinTangentLength = 1e-6
)

// Speed modes, values in world units per second
const (
	SpeedNormal       = 15.0
	SpeedDrop         = 30.0
	SpeedClimbUp      = 9.0
	SpeedAcceleration = 5.0
)

// Zone trigger tags as authored on the track
const (
	ZoneTagNormal   = "normal_speed"
	ZoneTagBoost    = "speed_boost"
	ZoneTagSlowDown = "slow_down"
)
