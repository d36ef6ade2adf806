package audio

import "github.com/lixenwraith/vr-coaster/parameter"

// Config selects the output device settings and the clips bound to each name
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64           // effects.Volume exponent, 0 is unity gain
	Clips        map[string]string // Clip name to WAV path, empty map uses synthesized tones
}

// DefaultConfig returns enabled audio with synthesized clips
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
		Clips:        map[string]string{},
	}
}
