// Package input collects raw window events between frames and turns them
// into a per-frame snapshot of mouse and keyboard state.
package input

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

const (
	doubleClickWindow = 250 * time.Millisecond
	lmbRepeatPeriod   = 70 * time.Millisecond
	// A held button starts repeating after this many periods.
	lmbRepeatDelay = 3
	maxKeysTyped   = 128
)

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// State is the input snapshot for one frame. Edge fields (Clicked,
// UnClicked, KeyDowns, KeyUps, velocities) describe what changed since the
// previous frame.
type State struct {
	WindowHasFocus bool

	LMB, MMB, RMB bool

	LMBDoubleClicked bool
	LMBRepeated      bool

	LMBClicked, MMBClicked, RMBClicked       bool
	LMBUnClicked, MMBUnClicked, RMBUnClicked bool

	MouseX, MouseY, MouseZ          int
	MouseVelX, MouseVelY, MouseVelZ int

	KeysTyped []rune
	Keys      [256]bool
	KeyDowns  [256]bool
	KeyUps    [256]bool
}

// KeyDown reports whether k is held.
func (s *State) KeyDown(k Key) bool { return s.Keys[k] }

// KeyPressed reports whether k went down this frame.
func (s *State) KeyPressed(k Key) bool { return s.KeyDowns[k] }

// NumKeyDowns counts keys that went down this frame.
func (s *State) NumKeyDowns() int { return count(&s.KeyDowns) }

// NumKeyUps counts keys that were released this frame.
func (s *State) NumKeyUps() int { return count(&s.KeyUps) }

func count(keys *[256]bool) int {
	n := 0
	for _, k := range keys {
		if k {
			n++
		}
	}
	return n
}

// Tracker receives window callbacks and produces a State per frame.
// Callbacks may arrive from the window system's event thread.
type Tracker struct {
	clock clock.Clock

	mu        sync.Mutex
	focus     bool
	buttons   [3]bool
	mouseX    float64
	mouseY    float64
	wheel     float64
	keys      [256]bool
	keyDowns  [256]bool
	keyUps    [256]bool
	typed     []rune
	hasCursor bool

	// carried between frames
	prev         State
	hadCursor    bool
	oldButtons   [3]bool
	lastClick    time.Time
	repeatsSoFar int
}

// NewTracker returns a tracker timing clicks with clk. A nil clk uses the
// wall clock.
func NewTracker(clk clock.Clock) *Tracker {
	if clk == nil {
		clk = clock.New()
	}
	return &Tracker{clock: clk, focus: true}
}

// OnFocus records window focus changes. Losing focus releases all keys.
func (t *Tracker) OnFocus(focused bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.focus = focused
	if !focused {
		for k, down := range t.keys {
			if down {
				t.keyUps[k] = true
			}
		}
		t.keys = [256]bool{}
		t.buttons = [3]bool{}
	}
}

// OnCursor records the cursor position in window pixels.
func (t *Tracker) OnCursor(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mouseX, t.mouseY = x, y
	t.hasCursor = true
}

// OnButton records a mouse button press or release.
func (t *Tracker) OnButton(b Button, pressed bool) {
	if b < ButtonLeft || b > ButtonMiddle {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buttons[b] = pressed
}

// OnScroll records wheel movement; positive is away from the user.
func (t *Tracker) OnScroll(dy float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.wheel += dy
}

// OnKey records a key press or release. Auto-repeat events should not be
// passed as presses.
func (t *Tracker) OnKey(k Key, pressed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if pressed && !t.keys[k] {
		t.keyDowns[k] = true
	}
	if !pressed && t.keys[k] {
		t.keyUps[k] = true
	}
	t.keys[k] = pressed
}

// OnChar records a typed character.
func (t *Tracker) OnChar(r rune) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.typed) < maxKeysTyped {
		t.typed = append(t.typed, r)
	}
}

// Advance closes the current frame and returns its snapshot.
func (t *Tracker) Advance() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	var s State
	s.WindowHasFocus = t.focus
	s.LMB, s.RMB, s.MMB = t.buttons[ButtonLeft], t.buttons[ButtonRight], t.buttons[ButtonMiddle]

	s.MouseX, s.MouseY = int(t.mouseX), int(t.mouseY)
	s.MouseZ = t.prev.MouseZ + int(t.wheel)
	if t.hadCursor {
		s.MouseVelX = s.MouseX - t.prev.MouseX
		s.MouseVelY = s.MouseY - t.prev.MouseY
	}
	s.MouseVelZ = s.MouseZ - t.prev.MouseZ
	// keep the fractional remainder for touchpads
	t.wheel -= float64(int(t.wheel))

	s.LMBClicked = s.LMB && !t.oldButtons[ButtonLeft]
	s.MMBClicked = s.MMB && !t.oldButtons[ButtonMiddle]
	s.RMBClicked = s.RMB && !t.oldButtons[ButtonRight]
	s.LMBUnClicked = !s.LMB && t.oldButtons[ButtonLeft]
	s.MMBUnClicked = !s.MMB && t.oldButtons[ButtonMiddle]
	s.RMBUnClicked = !s.RMB && t.oldButtons[ButtonRight]
	t.oldButtons = t.buttons

	now := t.clock.Now()
	if s.LMBClicked {
		if !t.lastClick.IsZero() && now.Sub(t.lastClick) < doubleClickWindow {
			s.LMBDoubleClicked = true
			s.LMBClicked = false
		}
		t.lastClick = now
		t.repeatsSoFar = 0
	}
	if s.LMB && !t.lastClick.IsZero() {
		repeats := int(now.Sub(t.lastClick) / lmbRepeatPeriod)
		if repeats > lmbRepeatDelay && repeats > t.repeatsSoFar {
			t.repeatsSoFar = repeats
			s.LMBRepeated = true
		}
	}

	s.Keys = t.keys
	s.KeyDowns = t.keyDowns
	s.KeyUps = t.keyUps
	t.keyDowns = [256]bool{}
	t.keyUps = [256]bool{}
	if len(t.typed) > 0 {
		s.KeysTyped = t.typed
		t.typed = nil
	}

	t.prev = s
	t.hadCursor = t.hasCursor
	return s
}
