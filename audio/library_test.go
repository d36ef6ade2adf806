package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestToneRange verifies synthesized tones stay within [-1, 1] and never end
func TestToneRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw} {
		tn := NewTone(110, wave, beep.SampleRate(44100))
		buf := make([][2]float64, 4096)
		for round := 0; round < 3; round++ {
			n, ok := tn.Stream(buf)
			if n != len(buf) || !ok {
				t.Fatalf("Wave %d: expected full stream, got %d %v", wave, n, ok)
			}
		}
		for i := range buf {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("Wave %d sample %d out of range: %f", wave, i, buf[i][0])
			}
		}
	}
}

// TestLibraryOpen verifies lookup and the unknown clip error
func TestLibraryOpen(t *testing.T) {
	lib := NewLibrary(beep.SampleRate(44100))
	lib.RegisterTone("normal", 110, WaveSine)

	if !lib.Has("normal") {
		t.Fatal("Expected normal clip to be registered")
	}
	if s, err := lib.Open("normal"); err != nil || s == nil {
		t.Fatalf("Expected stream for normal, got %v %v", s, err)
	}
	if _, err := lib.Open("missing"); !errors.Is(err, ErrUnknownClip) {
		t.Errorf("Expected ErrUnknownClip, got %v", err)
	}
}

// TestLibraryLoadMissingFile verifies file errors surface with the clip name
func TestLibraryLoadMissingFile(t *testing.T) {
	lib := NewLibrary(beep.SampleRate(44100))
	if err := lib.LoadWAV("fast", "/nonexistent/fast.wav"); err == nil {
		t.Fatal("Expected error loading missing file")
	}
	if lib.Has("fast") {
		t.Error("Failed load must not register the clip")
	}
}

// TestPlayerHeadless verifies crossfades are tracked without an output device
func TestPlayerHeadless(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	lib, err := DefaultLibrary(cfg, map[string]float64{"normal": 110, "fast": 220})
	if err != nil {
		t.Fatalf("DefaultLibrary: %v", err)
	}
	p := NewPlayer(cfg, lib)

	if err := p.Start(); !errors.Is(err, ErrAudioUnavailable) {
		t.Errorf("Expected ErrAudioUnavailable when disabled, got %v", err)
	}
	if p.Running() {
		t.Error("Disabled player must not report running")
	}

	if err := p.CrossFade("fast", 1, time.Second); err != nil {
		t.Fatalf("CrossFade: %v", err)
	}
	if p.Source().Current() != "fast" {
		t.Errorf("Expected fast clip active, got %q", p.Source().Current())
	}
	if err := p.CrossFade("slow", 1, time.Second); !errors.Is(err, ErrUnknownClip) {
		t.Errorf("Expected ErrUnknownClip, got %v", err)
	}
	p.Stop()
}
