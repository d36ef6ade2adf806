package parameter

// Rail mesh generation
const (
	// TrackResolution is the curve parameter step between rail samples
	TrackResolution = 0.005

	// TrackBeamDistance is the arc length between consecutive cross-beams
	TrackBeamDistance = 2.0

	// TrackBeamStepDivisor subdivides the rail step for beam distance accumulation
	TrackBeamStepDivisor = 5

	// TrackSeamEpsilon absorbs float error when testing the loop seam condition
	TrackSeamEpsilon = 1e-9

	// TrackMinCurveLength below which a curve cannot carry a track
	TrackMinCurveLength = 1e-6

	// TrackMaxSamples bounds rail samples per build, so resolution must be at least its inverse
	TrackMaxSamples = 100000
)

// Generated object names
const (
	TrackLeftRailName  = "left rail"
	TrackRightRailName = "right rail"
	TrackBeamName      = "cross beam"
)

// Default rail cross-section, offsets in the curve frame
const (
	TrackRailGauge      = 0.6 // Half distance between rails
	TrackRailRadius     = 0.08
	TrackRailSides      = 6
	TrackBeamHalfWidth  = 0.8
	TrackBeamHalfHeight = 0.05
	TrackBeamHalfDepth  = 0.1
	TrackBeamDrop       = -0.1 // Beam sits below the rail centreline
)
