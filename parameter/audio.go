package parameter

import "time"

// Speed mode soundtrack
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond

	// AudioCrossFadeVolume is the volume a clip fades in to
	AudioCrossFadeVolume = 1.0

	// AudioCrossFadeTime is the duration of a full crossfade
	AudioCrossFadeTime = 2 * time.Second

	// AudioMasterVolume in the effects.Volume exponent domain, 0 is unity gain
	AudioMasterVolume = 0.0
)

// Synthesized fallback clips, one per speed mode
const (
	AudioNormalFreq = 110.0
	AudioFastFreq   = 220.0
	AudioSlowFreq   = 73.4
	AudioClipLength = 4 * time.Second
)
