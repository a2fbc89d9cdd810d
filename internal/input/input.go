// Package input defines the boundary to the input-device polling layer.
// The core only sees level-triggered key states plus an edge-triggered mouse
// click; the production implementation lives in internal/platform.
package input

import "github.com/emberfield/game/internal/geom"

// Key is a logical game action key, mapped to physical keys by the source.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyAttack
	KeyBomb
	KeyToggle    // flips the restart/quit selector on the game-over screen
	KeySelect    // confirms the selector
	KeySelectAlt // alternate confirm key
	keyCount
)

// Count is the number of logical keys.
const Count = int(keyCount)

// Source is the polled input device state for the current frame.
type Source interface {
	// Pressed reports the level state of a key: true while held.
	Pressed(k Key) bool

	// Clicked returns the screen position of a mouse click that happened
	// this frame. Edge-triggered: true for exactly one frame per press.
	Clicked() (geom.Point, bool)
}

// Edge detects the not-pressed → pressed transition of a boolean sampled
// once per frame. It is the tiny per-key state machine used for toggle and
// debounce logic; callers keep one Edge per key across frames.
type Edge struct {
	prev bool
}

// Rising samples the current state and reports true only on the frame the
// state goes from false to true.
func (e *Edge) Rising(cur bool) bool {
	rose := cur && !e.prev
	e.prev = cur
	return rose
}

// Reset forgets the previous sample, so a currently-held key will read as a
// fresh press on the next Rising call.
func (e *Edge) Reset() {
	e.prev = false
}
