package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vr-coaster/config"
)

func smallConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Track.Resolution = 0.05
	cfg.Audio.Enabled = false
	return cfg
}

func TestBuildTrackWritesOBJ(t *testing.T) {
	var buf bytes.Buffer
	summary, err := buildTrack(smallConfig(t), &buf, true)
	require.NoError(t, err)

	// Loop at 0.05: 19 parameters then the seam sample
	assert.Equal(t, 20, summary.Samples)
	assert.Greater(t, summary.Beams, 0)

	obj := buf.String()
	assert.Contains(t, obj, "o left rail_")
	assert.Contains(t, obj, "o right rail_")
	assert.Contains(t, obj, "o cross beam_")
	assert.Contains(t, obj, "usemtl rail_steel")
	assert.Contains(t, obj, "\nf ")
}

func TestRideCommandHeadless(t *testing.T) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"ride", "--seconds", "3", "--every", "1"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, 3, strings.Count(out.String(), "speed="))
	assert.Contains(t, out.String(), "mode=")
}

func TestFlockCommand(t *testing.T) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"flock", "--seconds", "2", "--count", "5"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[1], "centroid=")
}

func TestRunSandboxQuitsOnEscape(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	defer screen.Fini()

	cfg := smallConfig(t)
	w, player, err := newWorld(cfg, worldParts{flock: true, walker: true})
	require.NoError(t, err)
	defer player.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		time.Sleep(100 * time.Millisecond)
		screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	}()
	require.NoError(t, runSandbox(ctx, screen, w))

	assert.NoError(t, ctx.Err(), "escape stops the sandbox before the timeout")
	assert.Greater(t, w.Frame(), int64(0))
}
