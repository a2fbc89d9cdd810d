// Package anim implements sprite clip playback: named frame sequences with
// per-frame timing and a loop or one-shot policy. A State is owned by exactly
// one entity and is advanced with wall-clock deltas each frame, so the
// current frame is a pure function of total elapsed time.
package anim

import (
	"fmt"
	"time"

	"github.com/emberfield/game/internal/geom"
)

// Clip is a named, ordered frame sequence. Clips are immutable after
// construction and may be shared between entities; per-entity playback
// position lives in State.
type Clip struct {
	Name      string
	Frames    []geom.Rect   // source-texture sub-rectangles, in play order
	FrameTime time.Duration // duration of each frame
	Loop      bool          // false = one-shot, clamps at the last frame
}

// Duration returns the total play time of the clip.
func (c *Clip) Duration() time.Duration {
	return time.Duration(len(c.Frames)) * c.FrameTime
}

// Strip builds a clip from count frames laid out left-to-right on row `row`
// of a texture atlas with uniform frame size w×h.
func Strip(name string, row, count, w, h int, frameTime time.Duration, loop bool) *Clip {
	frames := make([]geom.Rect, count)
	for i := range frames {
		frames[i] = geom.R(float64(i*w), float64(row*h), float64(w), float64(h))
	}
	return &Clip{Name: name, Frames: frames, FrameTime: frameTime, Loop: loop}
}

// State is the per-entity playback state. Exactly one clip is active at a
// time; switching clips resets elapsed time to zero.
type State struct {
	clips    map[string]*Clip
	active   *Clip
	elapsed  time.Duration
	finished bool
}

// NewState creates a playback state over the given clips. The first clip is
// active. Panics on an empty clip set or a duplicate clip name, both are
// authoring errors, not runtime conditions.
func NewState(clips ...*Clip) *State {
	if len(clips) == 0 {
		panic("anim: NewState requires at least one clip")
	}
	m := make(map[string]*Clip, len(clips))
	for _, c := range clips {
		if _, dup := m[c.Name]; dup {
			panic(fmt.Sprintf("anim: duplicate clip %q", c.Name))
		}
		m[c.Name] = c
	}
	return &State{clips: m, active: clips[0]}
}

// Activate switches to the named clip and resets elapsed time. Activating
// the already-active clip is a no-op, so callers may select a clip every
// frame without restarting it. Unknown names are ignored.
func (s *State) Activate(name string) {
	if s.active != nil && s.active.Name == name {
		return
	}
	c, ok := s.clips[name]
	if !ok {
		return
	}
	s.active = c
	s.elapsed = 0
	s.finished = false
}

// Active returns the name of the active clip.
func (s *State) Active() string {
	return s.active.Name
}

// Finished reports whether a one-shot clip has played through. Looping clips
// never finish.
func (s *State) Finished() bool {
	return s.finished
}

// Advance accumulates elapsed time. Looping clips wrap modulo the clip
// duration; one-shot clips clamp at the end and are marked finished. The
// resulting frame depends only on total elapsed time, not call granularity.
func (s *State) Advance(dt time.Duration) {
	d := s.active.Duration()
	if d <= 0 {
		return
	}
	s.elapsed += dt
	if s.active.Loop {
		s.elapsed %= d
		return
	}
	if s.elapsed >= d {
		s.elapsed = d
		s.finished = true
	}
}

// FrameRect returns the source rectangle for the current elapsed time.
// One-shot clips that have finished stay on their last frame.
func (s *State) FrameRect() geom.Rect {
	idx := int(s.elapsed / s.active.FrameTime)
	if idx >= len(s.active.Frames) {
		idx = len(s.active.Frames) - 1
	}
	return s.active.Frames[idx]
}
