package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// channel is one side of a DoubleSource
type channel struct {
	name     string
	streamer beep.Streamer
	volume   float64
	target   float64
	step     float64 // Volume change per sample
}

func (ch *channel) advanceVolume() {
	switch {
	case ch.volume < ch.target:
		ch.volume = math.Min(ch.target, ch.volume+ch.step)
	case ch.volume > ch.target:
		ch.volume = math.Max(ch.target, ch.volume-ch.step)
	}
}

// DoubleSource plays two streams and moves volume linearly from one to the other
// Thread-Safety: Stream runs on the speaker goroutine, CrossFade on the game loop
type DoubleSource struct {
	mu       sync.Mutex
	rate     beep.SampleRate
	channels [2]channel
	active   int
	buf      [][2]float64
}

func NewDoubleSource(rate beep.SampleRate) *DoubleSource {
	return &DoubleSource{rate: rate}
}

// CrossFade fades s in to maxVolume on the idle channel while the active channel fades out
// Requesting the clip already active only retargets its volume
func (d *DoubleSource) CrossFade(name string, s beep.Streamer, maxVolume float64, fade time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := float64(d.rate.N(fade))
	if n < 1 {
		n = 1
	}

	cur := &d.channels[d.active]
	if cur.streamer != nil && cur.name == name {
		cur.target = maxVolume
		cur.step = math.Abs(maxVolume-cur.volume) / n
		return
	}

	cur.target = 0
	cur.step = cur.volume / n

	d.active = 1 - d.active
	next := &d.channels[d.active]
	next.name = name
	next.streamer = s
	next.volume = 0
	next.target = maxVolume
	next.step = maxVolume / n
}

func (d *DoubleSource) Stream(samples [][2]float64) (n int, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range samples {
		samples[i] = [2]float64{}
	}
	if cap(d.buf) < len(samples) {
		d.buf = make([][2]float64, len(samples))
	}
	buf := d.buf[:len(samples)]

	for c := range d.channels {
		ch := &d.channels[c]
		if ch.streamer == nil {
			continue
		}
		got, more := ch.streamer.Stream(buf)
		for i := range samples {
			if i < got {
				samples[i][0] += buf[i][0] * ch.volume
				samples[i][1] += buf[i][1] * ch.volume
			}
			ch.advanceVolume()
		}
		if !more || (ch.volume == 0 && ch.target == 0) {
			ch.streamer = nil
			ch.name = ""
		}
	}
	return len(samples), true
}

func (d *DoubleSource) Err() error {
	return nil
}

// Current returns the name of the clip fading in or playing, empty when silent
func (d *DoubleSource) Current() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.channels[d.active].name
}

// Volumes returns the active and idle channel volumes
func (d *DoubleSource) Volumes() (active, idle float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.channels[d.active].volume, d.channels[1-d.active].volume
}
