package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vr-coaster/audio"
	"github.com/lixenwraith/vr-coaster/curve"
	"github.com/lixenwraith/vr-coaster/engine"
	"github.com/lixenwraith/vr-coaster/flock"
	"github.com/lixenwraith/vr-coaster/locomotion"
	"github.com/lixenwraith/vr-coaster/progress"
	"github.com/lixenwraith/vr-coaster/speed"
	"github.com/lixenwraith/vr-coaster/trackmesh"
)

// Curve builds the track spline
func (c *Config) Curve() (*curve.BezierSpline, error) {
	points := make([]mgl64.Vec3, len(c.Track.ControlPoints))
	for i, p := range c.Track.ControlPoints {
		if len(p) != 3 {
			return nil, fmt.Errorf("%w: control point %d has %d coordinates", ErrBadTrack, i, len(p))
		}
		points[i] = mgl64.Vec3{p[0], p[1], p[2]}
	}
	s, err := curve.NewAutoSpline(points, c.Track.Loop, c.Track.Smoothness)
	if err != nil {
		return nil, fmt.Errorf("build track curve: %w", err)
	}
	if err := s.SetAccuracy(c.Track.Accuracy); err != nil {
		return nil, fmt.Errorf("build track curve: %w", err)
	}
	return s, nil
}

// TrackerConfig parses the travel mode
func (c *Config) TrackerConfig() (progress.Config, error) {
	mode, err := progress.ParseTravelMode(c.Ride.Mode)
	if err != nil {
		return progress.Config{}, err
	}
	cfg := progress.Config{
		RelaxationBand:   c.Ride.RelaxationBand,
		Mode:             mode,
		LookForward:      c.Ride.LookForward,
		RotationLerpRate: c.Ride.RotationLerpRate,
	}
	return cfg, cfg.Validate()
}

func (c *Config) SpeedConfig() speed.Config {
	cfg := speed.DefaultConfig()
	cfg.Normal = c.Speed.Normal
	cfg.Drop = c.Speed.Drop
	cfg.ClimbUp = c.Speed.ClimbUp
	cfg.Acceleration = c.Speed.Acceleration
	cfg.FadeTime = c.Audio.FadeTime
	return cfg
}

func (c *Config) FlockConfig() flock.Config {
	return flock.Config{
		NeighborSquaredDistance: c.Flock.NeighborSquaredDistance,
		MaxVelocity:             c.Flock.MaxVelocity,
		SeparationWeight:        c.Flock.Separation,
		AlignmentWeight:         c.Flock.Alignment,
		CohesionWeight:          c.Flock.Cohesion,
	}
}

// FlockAgents spawns the configured flock above the origin
func (c *Config) FlockAgents() []flock.Agent {
	return flock.Spawn(c.Flock.Count, mgl64.Vec3{0, c.Flock.Height, 0}, c.Flock.Radius, c.Flock.Seed)
}

func (c *Config) LocomotionConfig() locomotion.Config {
	cfg := locomotion.DefaultConfig()
	cfg.Acceleration = c.Locomotion.Acceleration
	cfg.Damping = c.Locomotion.Damping
	cfg.GravityModifier = c.Locomotion.GravityModifier
	cfg.RotationAmount = c.Locomotion.RotationAmount
	cfg.RotationRatchet = c.Locomotion.RotationRatchet
	cfg.RotationSnap = c.Locomotion.RotationSnap
	cfg.RotationAnimation = c.Locomotion.RotationAnimation
	cfg.SkipMouseRotation = c.Locomotion.SkipMouseRotation
	cfg.EnableFreeMovement = c.Locomotion.FreeMovement
	return cfg
}

func (c *Config) AudioConfig() audio.Config {
	cfg := audio.DefaultConfig()
	cfg.Enabled = c.Audio.Enabled
	cfg.SampleRate = c.Audio.SampleRate
	cfg.MasterVolume = c.Audio.MasterVolume
	for k, v := range c.Audio.Clips {
		cfg.Clips[k] = v
	}
	return cfg
}

func (c *Config) BuilderConfig() trackmesh.Config {
	cfg := trackmesh.DefaultConfig()
	cfg.Resolution = c.Track.Resolution
	cfg.BeamDistance = c.Track.BeamDistance
	return cfg
}

func (c *Config) EngineZones() []engine.Zone {
	zones := make([]engine.Zone, len(c.Zones))
	for i, z := range c.Zones {
		zones[i] = engine.Zone{Name: z.Name, Tag: z.Tag, Start: z.Start, End: z.End}
	}
	return zones
}
