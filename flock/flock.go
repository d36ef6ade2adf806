// Package flock runs a boids simulation over a fixed set of agents
package flock

import (
	"log"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/vr-coaster/parameter"
	"github.com/lixenwraith/vr-coaster/physics"
	"github.com/lixenwraith/vr-coaster/vmath"
)

// Agent is one boid; Heading is unit length, Velocity is capped at the flock maximum
type Agent struct {
	ID int
	physics.Kinetic
	Heading mgl64.Vec3
}

// Config holds neighbourhood radius, speed cap and rule weights
type Config struct {
	NeighborSquaredDistance float64
	MaxVelocity             float64
	SeparationWeight        float64
	AlignmentWeight         float64
	CohesionWeight          float64
}

func DefaultConfig() Config {
	return Config{
		NeighborSquaredDistance: parameter.FlockNeighborSquaredDistance,
		MaxVelocity:             parameter.FlockMaxVelocity,
		SeparationWeight:        parameter.FlockSeparationWeight,
		AlignmentWeight:         parameter.FlockAlignmentWeight,
		CohesionWeight:          parameter.FlockCohesionWeight,
	}
}

// Simulator owns agent state between steps
// Agents are updated in slice order and later agents observe earlier agents' new state
type Simulator struct {
	cfg    Config
	rules  []Rule
	agents []Agent
	ns     []Neighbour
}

// NewSimulator copies agents and seeds each velocity from its heading
func NewSimulator(cfg Config, agents []Agent) *Simulator {
	if len(agents) == 0 {
		log.Printf("flock: no agents supplied, simulation will idle")
	}
	s := &Simulator{
		cfg: cfg,
		rules: []Rule{
			Separation{Weight: cfg.SeparationWeight},
			Cohesion{Weight: cfg.CohesionWeight},
			Alignment{Weight: cfg.AlignmentWeight},
		},
		agents: make([]Agent, len(agents)),
	}
	copy(s.agents, agents)
	for i := range s.agents {
		a := &s.agents[i]
		if h := unit(a.Heading); h != (mgl64.Vec3{}) {
			a.Heading = h
		} else {
			a.Heading = vmath.Forward
		}
		a.Velocity = vmath.ClampMagnitude(a.Heading, cfg.MaxVelocity)
	}
	return s
}

// Step advances every agent by dt
func (s *Simulator) Step(dt float64) {
	if len(s.agents) == 0 {
		log.Printf("flock: step requested with empty flock")
		return
	}
	for i := range s.agents {
		a := &s.agents[i]
		physics.ApplyImpulse(&a.Kinetic, s.Steering(i))
		physics.CapSpeed(&a.Kinetic, s.cfg.MaxVelocity)
		physics.Integrate(&a.Kinetic, dt)
		if h := unit(a.Velocity); h != (mgl64.Vec3{}) {
			a.Heading = h
		}
	}
}

// Steering returns the summed rule contribution for agent i, zero when it has no neighbours
func (s *Simulator) Steering(i int) mgl64.Vec3 {
	s.ns = s.neighbours(i, s.ns[:0])
	if len(s.ns) == 0 {
		return mgl64.Vec3{}
	}
	self := &s.agents[i]
	var steer mgl64.Vec3
	for _, r := range s.rules {
		steer = steer.Add(r.Steer(self, s.ns))
	}
	return steer
}

// neighbours collects agents strictly inside the radius, coincident agents excluded
func (s *Simulator) neighbours(i int, dst []Neighbour) []Neighbour {
	self := s.agents[i].Position
	for j := range s.agents {
		if j == i {
			continue
		}
		off := s.agents[j].Position.Sub(self)
		d := off.LenSqr()
		if d > 0 && d < s.cfg.NeighborSquaredDistance {
			dst = append(dst, Neighbour{
				Position: s.agents[j].Position,
				Heading:  s.agents[j].Heading,
				Offset:   off,
			})
		}
	}
	return dst
}

// Agents returns a copy of the current agent state
func (s *Simulator) Agents() []Agent {
	out := make([]Agent, len(s.agents))
	copy(out, s.agents)
	return out
}

// Len returns the agent count
func (s *Simulator) Len() int { return len(s.agents) }

// Spawn scatters n agents on a disc of the given radius around center with random headings
func Spawn(n int, center mgl64.Vec3, radius float64, seed int64) []Agent {
	rng := rand.New(rand.NewSource(seed))
	agents := make([]Agent, n)
	for i := range agents {
		a := rng.Float64() * 2 * math.Pi
		r := radius * math.Sqrt(rng.Float64())
		h := rng.Float64() * 2 * math.Pi
		agents[i] = Agent{
			ID:      i,
			Kinetic: physics.Kinetic{Position: center.Add(mgl64.Vec3{r * math.Cos(a), 0, r * math.Sin(a)})},
			Heading: mgl64.Vec3{math.Sin(h), 0, math.Cos(h)},
		}
	}
	return agents
}
