package parameter

import "time"

// Simulation loop
const (
	// TickRate is the fixed number of simulation steps per second
	TickRate = 60

	// TickDuration is the wall clock period of one step
	TickDuration = time.Second / TickRate

	// EventQueueSize caps the events raised in one tick before the oldest are dropped
	EventQueueSize = 256
)

// Terminal sandbox
const (
	// SandboxWorldUnitsPerCell converts the XZ plane to terminal cells
	SandboxWorldUnitsPerCell = 1.0

	// SandboxCellAspect compensates for terminal cells being about twice as tall as wide
	SandboxCellAspect = 0.5

	// SandboxTrackSamples is the number of curve samples drawn per frame
	SandboxTrackSamples = 400
)
