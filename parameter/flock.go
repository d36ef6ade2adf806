package parameter

// Boids steering
const (
	// FlockNeighborSquaredDistance is the squared radius inside which agents interact
	FlockNeighborSquaredDistance = 5.0

	FlockMaxVelocity      = 1.0
	FlockSeparationWeight = 0.8
	FlockAlignmentWeight  = 0.5
	FlockCohesionWeight   = 0.7

	// FlockNormalizeEpsilon matches engine vector normalisation, shorter vectors normalise to zero
	FlockNormalizeEpsilon = 1e-5
)

// Flock spawn defaults for commands and the sandbox
const (
	FlockDefaultCount  = 24
	FlockDefaultRadius = 6.0
	FlockDefaultHeight = 8.0
	FlockDefaultSeed   = 7
)
