package engine

import (
	"log"

	"github.com/lixenwraith/vr-coaster/events"
)

// zoneSpeedHandler forwards zone edges to the speed controller
type zoneSpeedHandler struct{}

func (zoneSpeedHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventZoneEnter, events.EventZoneExit}
}

func (zoneSpeedHandler) HandleEvent(w *World, ev events.GameEvent) {
	p, ok := ev.Payload.(*events.ZonePayload)
	if !ok {
		return
	}
	switch ev.Type {
	case events.EventZoneEnter:
		// Unknown tags are logged by the controller and leave the mode unchanged
		_ = w.speed.Enter(p.Tag)
	case events.EventZoneExit:
		w.speed.Exit(p.Tag)
	}
}

// lapHandler counts arrivals at the far end of the track
type lapHandler struct{}

func (lapHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventPathCompleted}
}

func (lapHandler) HandleEvent(w *World, ev events.GameEvent) {
	p, ok := ev.Payload.(*events.PathCompletedPayload)
	if !ok {
		return
	}
	w.laps++
	log.Printf("world: path completed at endpoint %d (%s) frame %d lap %d", p.Endpoint, p.Mode, ev.Frame, w.laps)
}

// speedLogHandler records settled ramps
type speedLogHandler struct{}

func (speedLogHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventSpeedReached}
}

func (speedLogHandler) HandleEvent(w *World, ev events.GameEvent) {
	if p, ok := ev.Payload.(*events.SpeedReachedPayload); ok {
		log.Printf("world: speed settled at %.2f (%s) frame %d", p.Speed, p.Mode, ev.Frame)
	}
}
