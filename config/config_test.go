package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vr-coaster/progress"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "loop", cfg.Ride.Mode)
	assert.Equal(t, 15.0, cfg.Speed.Normal)
	assert.Equal(t, 30.0, cfg.Speed.Drop)
	assert.Equal(t, 9.0, cfg.Speed.ClimbUp)
	assert.Equal(t, 5.0, cfg.Speed.Acceleration)
	assert.Equal(t, 2*time.Second, cfg.Audio.FadeTime)
	assert.Len(t, cfg.Track.ControlPoints, len(defaultTrack))
	assert.Len(t, cfg.Zones, 3)
	assert.True(t, cfg.Track.Loop)
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ride.yaml")
	body := `
ride:
  mode: pingpong
speed:
  drop: 40
track:
  loop: false
  control_points:
    - [0, 0, 0]
    - [0, 0, 50]
    - [10, 5, 80]
zones:
  - name: boost
    tag: speed_boost
    start: 0.1
    end: 0.3
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40.0, cfg.Speed.Drop)
	assert.Equal(t, 15.0, cfg.Speed.Normal, "untouched keys keep defaults")
	require.Len(t, cfg.Zones, 1)
	assert.Equal(t, "speed_boost", cfg.Zones[0].Tag)

	tc, err := cfg.TrackerConfig()
	require.NoError(t, err)
	assert.Equal(t, progress.PingPong, tc.Mode)

	s, err := cfg.Curve()
	require.NoError(t, err)
	assert.False(t, s.IsLoop())
	assert.InDelta(t, 0, s.Point(0)[2], 1e-9)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("VRCOASTER_SPEED_NORMAL", "12.5")
	t.Setenv("VRCOASTER_RIDE_MODE", "once")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12.5, cfg.Speed.Normal)
	assert.Equal(t, 12.5, cfg.SpeedConfig().Normal)

	tc, err := cfg.TrackerConfig()
	require.NoError(t, err)
	assert.Equal(t, progress.Once, tc.Mode)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigRead)

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("track:\n  control_points:\n    - [1, 2]\n    - [3, 4, 5]\n"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrBadTrack)
}

func TestAccelerationMustBePositive(t *testing.T) {
	for _, acc := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		cfg := Default()
		cfg.Speed.Acceleration = acc
		assert.ErrorIs(t, cfg.Validate(), ErrBadSpeed, "acceleration %v", acc)
	}

	t.Setenv("VRCOASTER_SPEED_ACCELERATION", "-5")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrBadSpeed)
}

func TestBadModeRejected(t *testing.T) {
	cfg := Default()
	cfg.Ride.Mode = "sideways"
	_, err := cfg.TrackerConfig()
	assert.ErrorIs(t, err, progress.ErrUnknownTravelMode)
}

func TestBuilders(t *testing.T) {
	cfg := Default()

	s, err := cfg.Curve()
	require.NoError(t, err)
	assert.True(t, s.IsLoop())

	agents := cfg.FlockAgents()
	assert.Len(t, agents, cfg.Flock.Count)

	fc := cfg.FlockConfig()
	assert.Equal(t, 0.8, fc.SeparationWeight)

	lc := cfg.LocomotionConfig()
	assert.True(t, lc.SkipMouseRotation)
	assert.Equal(t, 45.0, lc.RotationRatchet)

	zones := cfg.EngineZones()
	require.Len(t, zones, 3)
	assert.Equal(t, "drop", zones[1].Name)

	bc := cfg.BuilderConfig()
	assert.Equal(t, 0.005, bc.Resolution)

	ac := cfg.AudioConfig()
	assert.Equal(t, 44100, ac.SampleRate)
}
