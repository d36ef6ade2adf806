package speed

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/vr-coaster/parameter"
)

var ErrUnknownZoneTag = errors.New("speed: unknown zone tag")

// Mode selects the target speed of the car
type Mode int

const (
	ModeNormal Mode = iota + 1
	ModeDrop
	ModeClimbUp
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDrop:
		return "drop"
	case ModeClimbUp:
		return "climb_up"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ModeForTag maps a zone trigger tag to its speed mode
func ModeForTag(tag string) (Mode, error) {
	switch tag {
	case parameter.ZoneTagNormal:
		return ModeNormal, nil
	case parameter.ZoneTagBoost:
		return ModeDrop, nil
	case parameter.ZoneTagSlowDown:
		return ModeClimbUp, nil
	default:
		return 0, fmt.Errorf("%q: %w", tag, ErrUnknownZoneTag)
	}
}
