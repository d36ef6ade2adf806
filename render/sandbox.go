// Package render draws a top-down view of the ride into a tcell screen
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vr-coaster/curve"
	"github.com/lixenwraith/vr-coaster/engine"
	"github.com/lixenwraith/vr-coaster/vmath"
)

var (
	styleTrack  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHigh   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleCar    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleAgent  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleAvatar = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Glyphs
const (
	GlyphTrack  = '·'
	GlyphHigh   = '•' // Track above the mean height
	GlyphCar    = '@'
	GlyphAgent  = 'v'
	GlyphAvatar = 'A'
)

// Sandbox owns the screen layout and the cached track polyline
type Sandbox struct {
	screen tcell.Screen
	view   Viewport
	track  []mgl64.Vec3
	mean   float64
	width  int
	height int
}

// NewSandbox samples c once and fits the view to it
func NewSandbox(screen tcell.Screen, c curve.Provider, samples int) *Sandbox {
	s := &Sandbox{screen: screen, view: NewViewport()}
	if c != nil && samples > 1 {
		s.track = make([]mgl64.Vec3, samples)
		for i := range s.track {
			p := c.Point(float64(i) / float64(samples-1))
			s.track[i] = p
			s.mean += p[1]
		}
		s.mean /= float64(samples)
	}
	s.resize()
	return s
}

func (s *Sandbox) resize() {
	w, h := s.screen.Size()
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	// Bottom row is the status line
	s.view.Fit(s.track, w, h-1)
}

// View returns the current viewport
func (s *Sandbox) View() Viewport { return s.view }

func (s *Sandbox) put(p mgl64.Vec3, r rune, style tcell.Style) {
	x, y, ok := s.view.Project(p, s.width, s.height-1)
	if ok {
		s.screen.SetContent(x, y, r, nil, style)
	}
}

// Draw renders one frame of snap
func (s *Sandbox) Draw(snap engine.Snapshot) {
	s.resize()
	s.screen.Clear()

	for _, p := range s.track {
		if p[1] > s.mean {
			s.put(p, GlyphHigh, styleHigh)
		} else {
			s.put(p, GlyphTrack, styleTrack)
		}
	}
	for _, a := range snap.Agents {
		s.put(a, GlyphAgent, styleAgent)
	}
	s.put(snap.Avatar, GlyphAvatar, styleAvatar)
	s.put(snap.Position.Add(vmath.AxisForward(snap.Rotation).Mul(s.view.Scale)), Arrow(vmath.Yaw(snap.Rotation)), styleCar)
	s.put(snap.Position, GlyphCar, styleCar)

	s.drawText(0, s.height-1, s.status(snap), styleStatus)
	s.screen.Show()
}

func (s *Sandbox) status(snap engine.Snapshot) string {
	zones := "-"
	if len(snap.ActiveZones) > 0 {
		zones = strings.Join(snap.ActiveZones, ",")
	}
	return fmt.Sprintf(" t=%.3f  speed %.1f (%s)  laps %d  zones %s  avatar yaw %.0f  [wasd move, q/e turn, esc quit]",
		snap.Parameter, snap.Speed, snap.Mode, snap.Laps, zones, snap.AvatarYaw)
}

func (s *Sandbox) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= s.width {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < s.width; x++ {
		s.screen.SetContent(x, y, ' ', nil, style)
	}
}

// Arrow returns the glyph pointing along yaw degrees, 0 is screen up
func Arrow(yaw float64) rune {
	arrows := [...]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}
	i := int(vmath.Repeat(yaw+22.5, 360) / 45)
	return arrows[i%len(arrows)]
}
