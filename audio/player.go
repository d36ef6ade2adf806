// Package audio crossfades the ride soundtrack between per-speed clips
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vr-coaster/parameter"
)

// Player owns the speaker and the crossfading source
// A player that was never started still tracks crossfade state, so the ride can run headless
type Player struct {
	mu          sync.Mutex
	cfg         Config
	lib         *Library
	source      *DoubleSource
	master      *effects.Volume
	initialized bool
}

// NewPlayer builds the mixing chain; nothing is opened until Start
func NewPlayer(cfg Config, lib *Library) *Player {
	rate := beep.SampleRate(cfg.SampleRate)
	if lib == nil {
		lib = NewLibrary(rate)
	}
	src := NewDoubleSource(lib.SampleRate())
	return &Player{
		cfg:    cfg,
		lib:    lib,
		source: src,
		master: &effects.Volume{Streamer: src, Base: 2, Volume: cfg.MasterVolume},
	}
}

// Start opens the output device and begins playback
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if !p.cfg.Enabled {
		return ErrAudioUnavailable
	}
	rate := p.lib.SampleRate()
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}
	speaker.Play(p.master)
	p.initialized = true
	return nil
}

// Stop silences playback
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// CrossFade switches the soundtrack to clip
func (p *Player) CrossFade(clip string, maxVolume float64, fade time.Duration) error {
	s, err := p.lib.Open(clip)
	if err != nil {
		return err
	}
	p.source.CrossFade(clip, s, maxVolume, fade)
	return nil
}

// Source exposes the crossfading streamer
func (p *Player) Source() *DoubleSource { return p.source }

// Running reports whether the output device is open
func (p *Player) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// DefaultLibrary binds the three ride clips, loading WAV paths from cfg where given and tones otherwise
func DefaultLibrary(cfg Config, names map[string]float64) (*Library, error) {
	lib := NewLibrary(beep.SampleRate(cfg.SampleRate))
	for name, freq := range names {
		if path, ok := cfg.Clips[name]; ok && path != "" {
			if err := lib.LoadWAV(name, path); err != nil {
				return nil, err
			}
			continue
		}
		lib.RegisterTone(name, freq, WaveSaw)
	}
	return lib, nil
}
