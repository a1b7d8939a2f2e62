// Package input turns window key and mouse events into per-frame
// snapshots with edge detection.
package input

import (
	"strings"
	"sync"

	"frender/pkg/geom"
)

// Key names a keyboard key, e.g. "N", "Space", "Escape".
type Key string

// Normalize upper-cases single letters so "n" and "N" compare equal.
func (k Key) Normalize() Key {
	if len(k) == 1 {
		return Key(strings.ToUpper(string(k)))
	}
	return k
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota + 1
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Snapshot is the immutable input state for one frame.
type Snapshot struct {
	keys     map[Key]bool
	keysDown map[Key]bool
	keysUp   map[Key]bool
	buttons  map[MouseButton]bool
	btnDown  map[MouseButton]bool
	btnUp    map[MouseButton]bool
	mouse    geom.Vec2
	delta    geom.Vec2
}

// Pressed reports whether k is held.
func (s Snapshot) Pressed(k Key) bool { return s.keys[k.Normalize()] }

// JustPressed reports whether k went down during this frame.
func (s Snapshot) JustPressed(k Key) bool { return s.keysDown[k.Normalize()] }

// JustReleased reports whether k went up during this frame.
func (s Snapshot) JustReleased(k Key) bool { return s.keysUp[k.Normalize()] }

// ButtonPressed reports whether b is held.
func (s Snapshot) ButtonPressed(b MouseButton) bool { return s.buttons[b] }

// ButtonJustPressed reports whether b went down during this frame.
func (s Snapshot) ButtonJustPressed(b MouseButton) bool { return s.btnDown[b] }

// ButtonJustReleased reports whether b went up during this frame.
func (s Snapshot) ButtonJustReleased(b MouseButton) bool { return s.btnUp[b] }

// Mouse returns the pointer position in canvas pixels.
func (s Snapshot) Mouse() geom.Vec2 { return s.mouse }

// MouseDelta returns the pointer movement since the previous frame.
func (s Snapshot) MouseDelta() geom.Vec2 { return s.delta }

// Scaled returns a copy with the pointer mapped into a canvas magnified k
// times, as seen by content drawn inside a scaled preview.
func (s Snapshot) Scaled(k int) Snapshot {
	if k <= 1 {
		return s
	}
	s.mouse = geom.V(floorDiv(s.mouse.X, k), floorDiv(s.mouse.Y, k))
	s.delta = geom.V(s.delta.X/k, s.delta.Y/k)
	return s
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Tracker accumulates events between frames. It is safe for concurrent
// use: the window delivers events on its own goroutine while the frame
// loop calls Frame.
type Tracker struct {
	mu       sync.Mutex
	keys     map[Key]bool
	keysDown map[Key]bool
	keysUp   map[Key]bool
	buttons  map[MouseButton]bool
	btnDown  map[MouseButton]bool
	btnUp    map[MouseButton]bool
	mouse    geom.Vec2
	last     geom.Vec2
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		keys:     map[Key]bool{},
		keysDown: map[Key]bool{},
		keysUp:   map[Key]bool{},
		buttons:  map[MouseButton]bool{},
		btnDown:  map[MouseButton]bool{},
		btnUp:    map[MouseButton]bool{},
	}
}

// KeyDown records a key press. Auto-repeat of a held key is ignored.
func (t *Tracker) KeyDown(k Key) {
	k = k.Normalize()
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.keys[k] {
		return
	}
	t.keys[k] = true
	t.keysDown[k] = true
}

// KeyUp records a key release.
func (t *Tracker) KeyUp(k Key) {
	k = k.Normalize()
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.keys[k] {
		return
	}
	t.keys[k] = false
	t.keysUp[k] = true
}

// ButtonDown records a mouse button press.
func (t *Tracker) ButtonDown(b MouseButton) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.buttons[b] {
		return
	}
	t.buttons[b] = true
	t.btnDown[b] = true
}

// ButtonUp records a mouse button release.
func (t *Tracker) ButtonUp(b MouseButton) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.buttons[b] {
		return
	}
	t.buttons[b] = false
	t.btnUp[b] = true
}

// MoveTo records the pointer position.
func (t *Tracker) MoveTo(p geom.Vec2) {
	t.mu.Lock()
	t.mouse = p
	t.mu.Unlock()
}

// Frame returns the snapshot for the frame that just ended and starts a
// new one. A key pressed and released between two frames reports both
// JustPressed and JustReleased while Pressed is false.
func (t *Tracker) Frame() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := Snapshot{
		keys:     copyMap(t.keys),
		keysDown: t.keysDown,
		keysUp:   t.keysUp,
		buttons:  copyMap(t.buttons),
		btnDown:  t.btnDown,
		btnUp:    t.btnUp,
		mouse:    t.mouse,
		delta:    t.mouse.Sub(t.last),
	}
	t.keysDown = map[Key]bool{}
	t.keysUp = map[Key]bool{}
	t.btnDown = map[MouseButton]bool{}
	t.btnUp = map[MouseButton]bool{}
	t.last = t.mouse
	return s
}

func copyMap[K comparable](m map[K]bool) map[K]bool {
	out := make(map[K]bool, len(m))
	for k, v := range m {
		if v {
			out[k] = true
		}
	}
	return out
}
