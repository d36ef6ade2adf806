package audio

import (
	"errors"
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

var (
	ErrUnknownClip      = errors.New("audio: unknown clip")
	ErrAudioUnavailable = errors.New("audio: output device unavailable")
)

// Library maps clip names to streamer factories; every Open starts a fresh stream
type Library struct {
	rate      beep.SampleRate
	factories map[string]func() beep.Streamer
}

// NewLibrary creates an empty library producing streams at rate
func NewLibrary(rate beep.SampleRate) *Library {
	return &Library{
		rate:      rate,
		factories: make(map[string]func() beep.Streamer),
	}
}

// Register binds name to factory, replacing any previous binding
func (l *Library) Register(name string, factory func() beep.Streamer) {
	l.factories[name] = factory
}

// RegisterTone binds name to a synthesized tone
func (l *Library) RegisterTone(name string, freq float64, wave WaveType) {
	rate := l.rate
	l.Register(name, func() beep.Streamer { return NewTone(freq, wave, rate) })
}

// LoadWAV decodes a WAV file into memory and binds name to a looping stream of it
func (l *Library) LoadWAV(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open clip %q: %w", name, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return fmt.Errorf("decode clip %q: %w", name, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != l.rate {
		src = beep.Resample(4, format.SampleRate, l.rate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: l.rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	l.Register(name, func() beep.Streamer { return newLooped(buf) })
	return nil
}

// Open returns a new stream for name
func (l *Library) Open(name string) (beep.Streamer, error) {
	f, ok := l.factories[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownClip)
	}
	return f(), nil
}

// Has reports whether name is bound
func (l *Library) Has(name string) bool {
	_, ok := l.factories[name]
	return ok
}

// SampleRate returns the library output rate
func (l *Library) SampleRate() beep.SampleRate { return l.rate }
