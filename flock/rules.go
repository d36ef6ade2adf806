package flock

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/vr-coaster/parameter"
	"github.com/lixenwraith/vr-coaster/vmath"
)

// Neighbour is what an agent observes of another agent inside its radius
type Neighbour struct {
	Position mgl64.Vec3
	Heading  mgl64.Vec3
	Offset   mgl64.Vec3 // Neighbour position minus own position
}

// Rule turns a non-empty neighbourhood into a weighted steering contribution
type Rule interface {
	Steer(self *Agent, ns []Neighbour) mgl64.Vec3
}

func unit(v mgl64.Vec3) mgl64.Vec3 {
	return vmath.Unit(v, parameter.FlockNormalizeEpsilon)
}

// Separation steers away from the mean offset of neighbours
type Separation struct{ Weight float64 }

func (r Separation) Steer(_ *Agent, ns []Neighbour) mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, n := range ns {
		sum = sum.Add(n.Offset)
	}
	avg := sum.Mul(-1 / float64(len(ns)))
	return unit(avg).Mul(r.Weight)
}

// Alignment steers toward the mean heading of neighbours
type Alignment struct{ Weight float64 }

func (r Alignment) Steer(_ *Agent, ns []Neighbour) mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, n := range ns {
		sum = sum.Add(n.Heading)
	}
	return unit(sum.Mul(1 / float64(len(ns)))).Mul(r.Weight)
}

// Cohesion steers toward the centroid of neighbours
type Cohesion struct{ Weight float64 }

func (r Cohesion) Steer(self *Agent, ns []Neighbour) mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, n := range ns {
		sum = sum.Add(n.Position)
	}
	centroid := sum.Mul(1 / float64(len(ns)))
	return unit(centroid.Sub(self.Position)).Mul(r.Weight)
}
