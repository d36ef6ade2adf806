// Package events carries ride notifications from the simulation step to their handlers
package events

import (
	"fmt"
	"time"
)

// EventType represents the type of ride event
type EventType int

const (
	// EventPathCompleted signals the car reached an endpoint band
	// Trigger: progress.Tracker completion listener
	// Consumer: World logging, sandbox status | Payload: *PathCompletedPayload
	EventPathCompleted EventType = iota + 1

	// EventZoneEnter signals the car parameter entered a speed zone
	// Trigger: World zone edge detection
	// Consumer: speed handler | Payload: *ZonePayload
	EventZoneEnter

	// EventZoneExit signals the car parameter left a speed zone
	// Trigger: World zone edge detection
	// Consumer: speed handler | Payload: *ZonePayload
	EventZoneExit

	// EventSpeedReached signals a speed ramp arrived at its target
	// Trigger: speed.Controller listener | Payload: *SpeedReachedPayload
	EventSpeedReached
)

func (t EventType) String() string {
	switch t {
	case EventPathCompleted:
		return "EventPathCompleted"
	case EventZoneEnter:
		return "EventZoneEnter"
	case EventZoneExit:
		return "EventZoneExit"
	case EventSpeedReached:
		return "EventSpeedReached"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// GameEvent represents a single ride event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64 // Tick the event was raised on
	Timestamp time.Time
}
