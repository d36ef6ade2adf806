package config

import (
	"github.com/spf13/viper"

	"github.com/lixenwraith/vr-coaster/parameter"
)

// defaultTrack is a looped circuit with a lift hill on the far side
var defaultTrack = [][]float64{
	{0, 1, 0},
	{20, 1, 10},
	{30, 6, 30},
	{20, 14, 50},
	{0, 16, 56},
	{-20, 8, 48},
	{-28, 2, 28},
	{-18, 1, 8},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ride.mode", "loop")
	v.SetDefault("ride.relaxation_band", parameter.RideRelaxationBand)
	v.SetDefault("ride.rotation_lerp_rate", parameter.RideRotationLerpRate)
	v.SetDefault("ride.look_forward", parameter.RideLookForward)

	v.SetDefault("speed.normal", parameter.SpeedNormal)
	v.SetDefault("speed.drop", parameter.SpeedDrop)
	v.SetDefault("speed.climb_up", parameter.SpeedClimbUp)
	v.SetDefault("speed.acceleration", parameter.SpeedAcceleration)

	v.SetDefault("track.control_points", defaultTrack)
	v.SetDefault("track.loop", true)
	v.SetDefault("track.smoothness", 0.35)
	v.SetDefault("track.accuracy", parameter.CurveArcLengthAccuracy)
	v.SetDefault("track.resolution", parameter.TrackResolution)
	v.SetDefault("track.beam_distance", parameter.TrackBeamDistance)
	v.SetDefault("track.beams", true)

	v.SetDefault("flock.count", parameter.FlockDefaultCount)
	v.SetDefault("flock.radius", parameter.FlockDefaultRadius)
	v.SetDefault("flock.height", parameter.FlockDefaultHeight)
	v.SetDefault("flock.seed", parameter.FlockDefaultSeed)
	v.SetDefault("flock.neighbor_squared_distance", parameter.FlockNeighborSquaredDistance)
	v.SetDefault("flock.max_velocity", parameter.FlockMaxVelocity)
	v.SetDefault("flock.separation", parameter.FlockSeparationWeight)
	v.SetDefault("flock.alignment", parameter.FlockAlignmentWeight)
	v.SetDefault("flock.cohesion", parameter.FlockCohesionWeight)

	v.SetDefault("locomotion.acceleration", parameter.LocomotionAcceleration)
	v.SetDefault("locomotion.damping", parameter.LocomotionDamping)
	v.SetDefault("locomotion.gravity_modifier", parameter.LocomotionGravityModifier)
	v.SetDefault("locomotion.rotation_amount", parameter.LocomotionRotationAmount)
	v.SetDefault("locomotion.rotation_ratchet", parameter.LocomotionRotationRatchet)
	v.SetDefault("locomotion.rotation_snap", false)
	v.SetDefault("locomotion.rotation_animation", parameter.LocomotionRotationAnimation)
	v.SetDefault("locomotion.skip_mouse_rotation", true)
	v.SetDefault("locomotion.free_movement", false)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sample_rate", parameter.AudioSampleRate)
	v.SetDefault("audio.master_volume", parameter.AudioMasterVolume)
	v.SetDefault("audio.fade_time", parameter.AudioCrossFadeTime)
	v.SetDefault("audio.clips", map[string]string{})

	v.SetDefault("zones", []map[string]any{
		{"name": "lift", "tag": parameter.ZoneTagSlowDown, "start": 0.2, "end": 0.45},
		{"name": "drop", "tag": parameter.ZoneTagBoost, "start": 0.5, "end": 0.7},
		{"name": "station", "tag": parameter.ZoneTagNormal, "start": 0.85, "end": 0.95},
	})
}
