package events

import "time"

// Handler receives the event types it lists, synchronously during dispatch
type Handler[T any] interface {
	HandleEvent(ctx T, event GameEvent)
	EventTypes() []EventType
}

// HandlerFunc adapts a function to Handler for a fixed set of event types
type HandlerFunc[T any] struct {
	Types []EventType
	Fn    func(ctx T, event GameEvent)
}

func (h HandlerFunc[T]) HandleEvent(ctx T, event GameEvent) { h.Fn(ctx, event) }

func (h HandlerFunc[T]) EventTypes() []EventType { return h.Types }

// Router fans queued events out to handlers in registration order, passing ctx through
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Emit queues an event for the next dispatch
func (r *Router[T]) Emit(t EventType, payload any, frame int64, now time.Time) {
	r.queue.Push(GameEvent{Type: t, Payload: payload, Frame: frame, Timestamp: now})
}

// DispatchAll routes every queued event and returns how many there were
// Events emitted by handlers wait for the next dispatch
func (r *Router[T]) DispatchAll(ctx T) int {
	batch := r.queue.Drain()
	for _, ev := range batch {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	return len(batch)
}
