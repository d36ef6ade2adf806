package engine

import "github.com/lixenwraith/vr-coaster/curve"

// Zone is a speed trigger covering a parameter interval of the track
// Start greater than End wraps across the seam of a looped curve
type Zone struct {
	Name  string
	Tag   string
	Start float64
	End   float64
}

// Contains reports whether parameter t lies in [Start, End)
// Loops wrap t; open curves clamp it and a zone reaching End 1 also holds the parked car at 1
func (z Zone) Contains(t float64, loop bool) bool {
	t = curve.NormalizeParam(t, loop)
	if z.Start <= z.End {
		if !loop && t >= 1 && z.End >= 1 {
			return t >= z.Start
		}
		return t >= z.Start && t < z.End
	}
	return t >= z.Start || t < z.End
}

// zoneEdge is an enter or exit transition found by zoneTracker
type zoneEdge struct {
	zone  int
	enter bool
}

// zoneTracker remembers which zones the car is inside and reports changes
type zoneTracker struct {
	zones  []Zone
	inside []bool
	loop   bool
}

func newZoneTracker(zones []Zone, loop bool) *zoneTracker {
	return &zoneTracker{zones: zones, inside: make([]bool, len(zones)), loop: loop}
}

// update returns exits before enters so back-to-back zones hand over cleanly
func (z *zoneTracker) update(t float64, dst []zoneEdge) []zoneEdge {
	dst = dst[:0]
	for i, zone := range z.zones {
		if z.inside[i] && !zone.Contains(t, z.loop) {
			z.inside[i] = false
			dst = append(dst, zoneEdge{zone: i})
		}
	}
	for i, zone := range z.zones {
		if !z.inside[i] && zone.Contains(t, z.loop) {
			z.inside[i] = true
			dst = append(dst, zoneEdge{zone: i, enter: true})
		}
	}
	return dst
}

func (z *zoneTracker) active() []string {
	var names []string
	for i, in := range z.inside {
		if in {
			names = append(names, z.zones[i].Name)
		}
	}
	return names
}
