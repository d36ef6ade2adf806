// Package config loads ride settings from file and environment on top of compiled defaults
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. VRCOASTER_SPEED_NORMAL
const EnvPrefix = "VRCOASTER"

var (
	ErrConfigRead  = errors.New("config: read failed")
	ErrConfigParse = errors.New("config: decode failed")
	ErrBadTrack    = errors.New("config: bad track definition")
	ErrBadSpeed    = errors.New("config: bad speed settings")
)

// Config is the full settings tree
type Config struct {
	Ride       RideConfig       `mapstructure:"ride"`
	Speed      SpeedConfig      `mapstructure:"speed"`
	Track      TrackConfig      `mapstructure:"track"`
	Flock      FlockConfig      `mapstructure:"flock"`
	Locomotion LocomotionConfig `mapstructure:"locomotion"`
	Audio      AudioConfig      `mapstructure:"audio"`
	Zones      []ZoneConfig     `mapstructure:"zones"`
}

type RideConfig struct {
	Mode             string  `mapstructure:"mode"`
	RelaxationBand   float64 `mapstructure:"relaxation_band"`
	RotationLerpRate float64 `mapstructure:"rotation_lerp_rate"`
	LookForward      bool    `mapstructure:"look_forward"`
}

type SpeedConfig struct {
	Normal       float64 `mapstructure:"normal"`
	Drop         float64 `mapstructure:"drop"`
	ClimbUp      float64 `mapstructure:"climb_up"`
	Acceleration float64 `mapstructure:"acceleration"`
}

// TrackConfig describes the spline through its control points; handles are generated
type TrackConfig struct {
	ControlPoints [][]float64 `mapstructure:"control_points"`
	Loop          bool        `mapstructure:"loop"`
	Smoothness    float64     `mapstructure:"smoothness"`
	Accuracy      int         `mapstructure:"accuracy"`
	Resolution    float64     `mapstructure:"resolution"`
	BeamDistance  float64     `mapstructure:"beam_distance"`
	Beams         bool        `mapstructure:"beams"`
}

type FlockConfig struct {
	Count                   int     `mapstructure:"count"`
	Radius                  float64 `mapstructure:"radius"`
	Height                  float64 `mapstructure:"height"`
	Seed                    int64   `mapstructure:"seed"`
	NeighborSquaredDistance float64 `mapstructure:"neighbor_squared_distance"`
	MaxVelocity             float64 `mapstructure:"max_velocity"`
	Separation              float64 `mapstructure:"separation"`
	Alignment               float64 `mapstructure:"alignment"`
	Cohesion                float64 `mapstructure:"cohesion"`
}

type LocomotionConfig struct {
	Acceleration      float64 `mapstructure:"acceleration"`
	Damping           float64 `mapstructure:"damping"`
	GravityModifier   float64 `mapstructure:"gravity_modifier"`
	RotationAmount    float64 `mapstructure:"rotation_amount"`
	RotationRatchet   float64 `mapstructure:"rotation_ratchet"`
	RotationSnap      bool    `mapstructure:"rotation_snap"`
	RotationAnimation float64 `mapstructure:"rotation_animation"`
	SkipMouseRotation bool    `mapstructure:"skip_mouse_rotation"`
	FreeMovement      bool    `mapstructure:"free_movement"`
}

type AudioConfig struct {
	Enabled      bool              `mapstructure:"enabled"`
	SampleRate   int               `mapstructure:"sample_rate"`
	MasterVolume float64           `mapstructure:"master_volume"`
	FadeTime     time.Duration     `mapstructure:"fade_time"`
	Clips        map[string]string `mapstructure:"clips"`
}

// ZoneConfig is a speed trigger over a parameter interval
type ZoneConfig struct {
	Name  string  `mapstructure:"name"`
	Tag   string  `mapstructure:"tag"`
	Start float64 `mapstructure:"start"`
	End   float64 `mapstructure:"end"`
}

// Load reads path (YAML, TOML or JSON by extension) over the defaults, then applies
// VRCOASTER_* environment overrides; an empty path uses defaults and environment only
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigRead, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the compiled defaults without reading file or environment
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults are static and always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate checks the track points, zone bounds and ramp acceleration
func (c *Config) Validate() error {
	if !(c.Speed.Acceleration > 0) || math.IsInf(c.Speed.Acceleration, 0) {
		return fmt.Errorf("%w: acceleration %v must be positive", ErrBadSpeed, c.Speed.Acceleration)
	}
	if len(c.Track.ControlPoints) < 2 {
		return fmt.Errorf("%w: need at least 2 control points, got %d", ErrBadTrack, len(c.Track.ControlPoints))
	}
	for i, p := range c.Track.ControlPoints {
		if len(p) != 3 {
			return fmt.Errorf("%w: control point %d has %d coordinates", ErrBadTrack, i, len(p))
		}
	}
	for _, z := range c.Zones {
		if z.Start < 0 || z.Start > 1 || z.End < 0 || z.End > 1 {
			return fmt.Errorf("%w: zone %q outside [0,1]", ErrBadTrack, z.Name)
		}
	}
	return nil
}
