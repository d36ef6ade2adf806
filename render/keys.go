package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vr-coaster/locomotion"
)

// KeyHoldTicks is how long a key press counts as held; terminals report no key release
const KeyHoldTicks = 8

// Keys turns terminal key presses into held locomotion input
type Keys struct {
	held      map[rune]int
	run       int
	stepLeft  bool
	stepRight bool
}

func NewKeys() *Keys {
	return &Keys{held: make(map[rune]int)}
}

// Handle records ev and returns false when the user asked to quit
func (k *Keys) Handle(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		k.hold('w', false)
	case tcell.KeyDown:
		k.hold('s', false)
	case tcell.KeyLeft:
		k.hold('a', false)
	case tcell.KeyRight:
		k.hold('d', false)
	case tcell.KeyRune:
		r := ev.Rune()
		switch r {
		case 'q', 'Q':
			k.stepLeft = true
		case 'e', 'E':
			k.stepRight = true
		case 'w', 's', 'a', 'd':
			k.hold(r, false)
		case 'W', 'S', 'A', 'D':
			k.hold(r+('a'-'A'), true)
		}
	}
	return true
}

func (k *Keys) hold(r rune, run bool) {
	k.held[r] = KeyHoldTicks
	if run {
		k.run = KeyHoldTicks
	}
}

// Input returns the controls for one tick and ages held keys
func (k *Keys) Input() locomotion.Input {
	in := locomotion.Input{
		Forward:   k.held['w'] > 0,
		Back:      k.held['s'] > 0,
		Left:      k.held['a'] > 0,
		Right:     k.held['d'] > 0,
		Run:       k.run > 0,
		StepLeft:  k.stepLeft,
		StepRight: k.stepRight,
	}
	for r, n := range k.held {
		if n <= 1 {
			delete(k.held, r)
		} else {
			k.held[r] = n - 1
		}
	}
	if k.run > 0 {
		k.run--
	}
	k.stepLeft, k.stepRight = false, false
	return in
}
