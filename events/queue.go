package events

import (
	"log"

	"github.com/lixenwraith/vr-coaster/parameter"
)

// EventQueue collects events raised during a tick until the router drains them
// Single goroutine only: the world pushes and dispatches on the tick
// Drain hands out one buffer while pushes fill the other, so handlers may emit
type EventQueue struct {
	pending []GameEvent
	spare   []GameEvent
	dropped int
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		pending: make([]GameEvent, 0, parameter.EventQueueSize),
		spare:   make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// Push appends event; at capacity the oldest pending event is discarded
func (eq *EventQueue) Push(event GameEvent) {
	if len(eq.pending) >= parameter.EventQueueSize {
		copy(eq.pending, eq.pending[1:])
		eq.pending = eq.pending[:len(eq.pending)-1]
		eq.dropped++
		log.Printf("events: queue full, dropped oldest event (%d dropped so far)", eq.dropped)
	}
	eq.pending = append(eq.pending, event)
}

// Drain returns pending events in FIFO order
// The slice is reused by the next Drain; events pushed meanwhile are kept for that call
func (eq *EventQueue) Drain() []GameEvent {
	out := eq.pending
	eq.pending = eq.spare[:0]
	eq.spare = out
	return out
}
