package locomotion

import "github.com/go-gl/mathgl/mgl64"

// Input is one tick of polled controls; the analog scheme and the keyboard fallback share it
type Input struct {
	Move      [2]float64 // Left stick, x right and y forward
	Turn      float64    // Right stick x
	MouseX    float64
	Forward   bool
	Back      bool
	Left      bool
	Right     bool
	Run       bool
	StepLeft  bool // Pressed this tick
	StepRight bool // Pressed this tick

	// Head is the headset orientation in world space, nil when the tracking rig is absent
	Head *mgl64.Quat
}
