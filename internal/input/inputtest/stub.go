// Package inputtest provides a scriptable input.Source for tests.
package inputtest

import (
	"github.com/emberfield/game/internal/geom"
	"github.com/emberfield/game/internal/input"
)

// Source is a settable input state. The zero value has nothing pressed.
type Source struct {
	Keys  [input.Count]bool
	Click geom.Point
	HasClick bool
}

var _ input.Source = (*Source)(nil)

func (s *Source) Pressed(k input.Key) bool {
	return s.Keys[k]
}

// Clicked reports the queued click once, then clears it.
func (s *Source) Clicked() (geom.Point, bool) {
	if !s.HasClick {
		return geom.Point{}, false
	}
	s.HasClick = false
	return s.Click, true
}

// Press sets keys down, leaving others untouched.
func (s *Source) Press(keys ...input.Key) {
	for _, k := range keys {
		s.Keys[k] = true
	}
}

// Release sets keys up.
func (s *Source) Release(keys ...input.Key) {
	for _, k := range keys {
		s.Keys[k] = false
	}
}

// ReleaseAll clears every key.
func (s *Source) ReleaseAll() {
	s.Keys = [input.Count]bool{}
}

// ClickAt queues a one-frame mouse click at a screen position.
func (s *Source) ClickAt(p geom.Point) {
	s.Click = p
	s.HasClick = true
}
