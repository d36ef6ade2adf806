package main

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vr-coaster/audio"
	"github.com/lixenwraith/vr-coaster/config"
	"github.com/lixenwraith/vr-coaster/engine"
	"github.com/lixenwraith/vr-coaster/flock"
	"github.com/lixenwraith/vr-coaster/locomotion"
	"github.com/lixenwraith/vr-coaster/parameter"
	"github.com/lixenwraith/vr-coaster/physics"
)

// clipFreqs are the synthesized stand-ins for the three ride clips
var clipFreqs = map[string]float64{
	"normal": parameter.AudioNormalFreq,
	"fast":   parameter.AudioFastFreq,
	"slow":   parameter.AudioSlowFreq,
}

// worldParts selects the optional components of a world
type worldParts struct {
	flock  bool
	walker bool
	sound  bool // Open the speaker; crossfades are tracked either way
}

// newWorld assembles the world described by cfg, the player is returned for shutdown
func newWorld(cfg *config.Config, parts worldParts) (*engine.World, *audio.Player, error) {
	spline, err := cfg.Curve()
	if err != nil {
		return nil, nil, err
	}
	tc, err := cfg.TrackerConfig()
	if err != nil {
		return nil, nil, err
	}

	acfg := cfg.AudioConfig()
	lib, err := audio.DefaultLibrary(acfg, clipFreqs)
	if err != nil {
		return nil, nil, fmt.Errorf("audio clips: %w", err)
	}
	player := audio.NewPlayer(acfg, lib)
	if parts.sound {
		if err := player.Start(); err != nil {
			log.Printf("coaster: continuing without sound: %v", err)
		}
	}

	opts := engine.Options{
		Curve:   spline,
		Tracker: tc,
		Speed:   cfg.SpeedConfig(),
		Fader:   player,
		Zones:   cfg.EngineZones(),
	}
	if parts.flock {
		opts.Flock = flock.NewSimulator(cfg.FlockConfig(), cfg.FlockAgents())
	}
	if parts.walker {
		start := spline.Point(0)
		body := physics.NewCharacter(mgl64.Vec3{start[0], 0, start[2] - 4}, 0, parameter.CharacterStepOffset)
		opts.Walker = locomotion.NewController(cfg.LocomotionConfig(), body, 0)
	}

	w, err := engine.NewWorld(opts)
	if err != nil {
		player.Stop()
		return nil, nil, err
	}
	return w, player, nil
}
