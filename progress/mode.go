package progress

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownTravelMode = errors.New("progress: unknown travel mode")
	ErrBadRelaxation     = errors.New("progress: relaxation band must be in [0, 0.5)")
)

// TravelMode selects what happens when the car reaches an end of the curve
// Values match the integer codes used by authored ride data
type TravelMode int

const (
	Once     TravelMode = 1 // Stop at the end
	Loop     TravelMode = 2 // Wrap to the other end
	PingPong TravelMode = 3 // Reflect and reverse direction
)

func (m TravelMode) String() string {
	switch m {
	case Once:
		return "once"
	case Loop:
		return "loop"
	case PingPong:
		return "pingpong"
	default:
		return fmt.Sprintf("TravelMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes
func (m TravelMode) Valid() bool {
	return m >= Once && m <= PingPong
}

// ParseTravelMode accepts mode names, case-insensitive
func ParseTravelMode(s string) (TravelMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "once":
		return Once, nil
	case "loop":
		return Loop, nil
	case "pingpong", "ping_pong", "to_and_fro":
		return PingPong, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownTravelMode)
}

// Endpoint identifies which end of the curve a completion refers to
type Endpoint int

const (
	EndpointZero Endpoint = iota
	EndpointOne
)

func (e Endpoint) String() string {
	if e == EndpointOne {
		return "end"
	}
	return "start"
}
