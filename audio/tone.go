package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// tone is an endless oscillator with a slow amplitude pulse, a stand-in for a recorded ride loop
type tone struct {
	freq  float64
	wave  WaveType
	rate  beep.SampleRate
	pos   int
	pulse float64 // Pulses per second
}

// NewTone creates an endless tone at freq
func NewTone(freq float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, wave: wave, rate: rate, pulse: freq / 64}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		sec := float64(t.pos) / float64(t.rate)
		phase := math.Mod(t.freq*sec, 1)

		var val float64
		switch t.wave {
		case WaveSquare:
			if phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2*phase - 1
		default:
			val = math.Sin(2 * math.Pi * phase)
		}

		amp := 0.2 * (0.75 + 0.25*math.Sin(2*math.Pi*t.pulse*sec))
		samples[i][0] = val * amp
		samples[i][1] = val * amp
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}

// looped replays a buffer from the start each time it drains
type looped struct {
	buf *beep.Buffer
	cur beep.StreamSeeker
}

func newLooped(buf *beep.Buffer) beep.Streamer {
	return &looped{buf: buf, cur: buf.Streamer(0, buf.Len())}
}

func (l *looped) Stream(samples [][2]float64) (n int, ok bool) {
	if l.buf.Len() == 0 {
		return 0, false
	}
	for n < len(samples) {
		m, more := l.cur.Stream(samples[n:])
		n += m
		if !more || m == 0 {
			l.cur = l.buf.Streamer(0, l.buf.Len())
		}
	}
	return n, true
}

func (l *looped) Err() error {
	return l.cur.Err()
}
