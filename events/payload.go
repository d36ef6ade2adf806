package events

// PathCompletedPayload reports which endpoint was reached
type PathCompletedPayload struct {
	Endpoint  int // 0 or 1
	Mode      string
	Parameter float64
	Lap       int
}

// ZonePayload identifies a speed zone by its trigger tag
type ZonePayload struct {
	Zone      string
	Tag       string
	Parameter float64
}

// SpeedReachedPayload reports the mode and speed a ramp settled on
type SpeedReachedPayload struct {
	Mode  string
	Speed float64
}
