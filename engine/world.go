// Package engine composes the ride, the flock and the walking avatar into one fixed-step world
package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vr-coaster/curve"
	"github.com/lixenwraith/vr-coaster/events"
	"github.com/lixenwraith/vr-coaster/flock"
	"github.com/lixenwraith/vr-coaster/locomotion"
	"github.com/lixenwraith/vr-coaster/progress"
	"github.com/lixenwraith/vr-coaster/speed"
)

// Options wires the collaborators of a World; Flock and Walker may be nil
type Options struct {
	Curve   curve.Provider
	Tracker progress.Config
	Speed   speed.Config
	Fader   speed.CrossFader
	Zones   []Zone
	Flock   *flock.Simulator
	Walker  *locomotion.Controller
	Time    TimeSource
}

// World advances every component once per tick in a fixed order:
// speed, tracker, zones, events, flock, avatar
// Not safe for concurrent use; Clock serializes ticks
type World struct {
	curve   curve.Provider
	tracker *progress.Tracker
	speed   *speed.Controller
	zones   *zoneTracker
	edges   []zoneEdge
	queue   *events.EventQueue
	router  *events.Router[*World]
	flock   *flock.Simulator
	walker  *locomotion.Controller
	time    TimeSource

	input locomotion.Input
	last  progress.Step
	frame int64
	laps  int
}

// NewWorld builds the tracker and speed controller and registers the event handlers
func NewWorld(opts Options) (*World, error) {
	tracker, err := progress.NewTracker(opts.Curve, opts.Tracker)
	if err != nil {
		return nil, err
	}
	if opts.Time == nil {
		opts.Time = NewMonotonicTimeProvider()
	}

	queue := events.NewEventQueue()
	w := &World{
		curve:   opts.Curve,
		tracker: tracker,
		zones:   newZoneTracker(opts.Zones, opts.Curve != nil && opts.Curve.IsLoop()),
		queue:   queue,
		router:  events.NewRouter[*World](queue),
		flock:   opts.Flock,
		walker:  opts.Walker,
		time:    opts.Time,
	}
	w.speed = speed.NewController(opts.Speed, opts.Fader)

	w.router.Register(zoneSpeedHandler{})
	w.router.Register(lapHandler{})
	w.router.Register(speedLogHandler{})

	tracker.OnCompleted(func(c progress.Completion) {
		w.emit(events.EventPathCompleted, &events.PathCompletedPayload{
			Endpoint:  int(c.Endpoint),
			Mode:      c.Mode.String(),
			Parameter: c.Parameter,
			Lap:       w.laps + 1,
		})
	})
	w.speed.OnTargetReached(func(m speed.Mode, v float64) {
		w.emit(events.EventSpeedReached, &events.SpeedReachedPayload{Mode: m.String(), Speed: v})
	})
	return w, nil
}

func (w *World) emit(t events.EventType, payload any) {
	w.router.Emit(t, payload, w.frame, w.time.Now())
}

// Register adds a handler routed alongside the built-in ones
func (w *World) Register(h events.Handler[*World]) {
	w.router.Register(h)
}

// SetInput stores avatar controls for the next tick; step buttons fire once
func (w *World) SetInput(in locomotion.Input) {
	w.input = in
}

// Tick advances the world by dt seconds
func (w *World) Tick(dt float64) {
	v := w.speed.Update(dt)
	w.last = w.tracker.Advance(v, dt)

	w.edges = w.zones.update(w.last.Parameter, w.edges)
	for _, e := range w.edges {
		zone := w.zones.zones[e.zone]
		t := events.EventZoneExit
		if e.enter {
			t = events.EventZoneEnter
		}
		w.emit(t, &events.ZonePayload{Zone: zone.Name, Tag: zone.Tag, Parameter: w.last.Parameter})
	}

	w.router.DispatchAll(w)

	if w.flock != nil {
		w.flock.Step(dt)
	}
	if w.walker != nil {
		w.walker.Tick(w.input, dt)
		w.input.StepLeft, w.input.StepRight = false, false
		w.input.MouseX = 0
	}
	w.frame++
}

// Frame returns the number of completed ticks
func (w *World) Frame() int64 { return w.frame }

func (w *World) Tracker() *progress.Tracker { return w.tracker }

func (w *World) Speed() *speed.Controller { return w.speed }

func (w *World) Flock() *flock.Simulator { return w.flock }

func (w *World) Walker() *locomotion.Controller { return w.walker }

func (w *World) Curve() curve.Provider { return w.curve }

// Snapshot is a copy of the observable world state
type Snapshot struct {
	Frame       int64
	Parameter   float64
	Speed       float64
	Mode        string
	Position    mgl64.Vec3
	Rotation    mgl64.Quat
	Forward     bool
	Laps        int
	ActiveZones []string
	Agents      []mgl64.Vec3
	Avatar      mgl64.Vec3
	AvatarYaw   float64
}

// Snapshot copies the current state for logging and drawing
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Frame:       w.frame,
		Parameter:   w.tracker.Progress(),
		Speed:       w.speed.Speed(),
		Mode:        w.speed.Mode().String(),
		Position:    w.tracker.Position(),
		Rotation:    w.tracker.Rotation(),
		Forward:     w.tracker.Forward(),
		Laps:        w.laps,
		ActiveZones: w.zones.active(),
	}
	if w.flock != nil {
		agents := w.flock.Agents()
		s.Agents = make([]mgl64.Vec3, len(agents))
		for i := range agents {
			s.Agents[i] = agents[i].Position
		}
	}
	if w.walker != nil {
		s.Avatar = w.walker.Position()
		s.AvatarYaw = w.walker.Yaw()
	}
	return s
}
