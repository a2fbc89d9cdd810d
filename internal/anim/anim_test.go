package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emberfield/game/internal/geom"
)

func testClips() (*Clip, *Clip) {
	walk := Strip("walk", 0, 4, 32, 32, 100*time.Millisecond, true)
	attack := Strip("attack", 1, 3, 32, 32, 80*time.Millisecond, false)
	return walk, attack
}

func TestAdvanceGranularity(t *testing.T) {
	walk, _ := testClips()

	coarse := NewState(walk)
	coarse.Advance(100 * time.Millisecond)

	fine := NewState(walk)
	for i := 0; i < 10; i++ {
		fine.Advance(10 * time.Millisecond)
	}

	require.Equal(t, coarse.FrameRect(), fine.FrameRect())
}

func TestLoopWraps(t *testing.T) {
	walk, _ := testClips()
	s := NewState(walk)

	// 4 frames × 100ms = 400ms per cycle; 450ms wraps to 50ms → frame 0.
	s.Advance(450 * time.Millisecond)
	require.Equal(t, geom.R(0, 0, 32, 32), s.FrameRect())
	require.False(t, s.Finished())
}

func TestOneShotClampsAndFinishes(t *testing.T) {
	_, attack := testClips()
	s := NewState(attack)

	s.Advance(80 * time.Millisecond)
	require.False(t, s.Finished())

	s.Advance(time.Second)
	require.True(t, s.Finished())
	require.Equal(t, geom.R(64, 32, 32, 32), s.FrameRect(), "stays on last frame")

	// Further advances keep the clamped frame.
	s.Advance(time.Second)
	require.Equal(t, geom.R(64, 32, 32, 32), s.FrameRect())
}

func TestActivateResetsElapsed(t *testing.T) {
	walk, attack := testClips()
	s := NewState(walk, attack)

	s.Advance(250 * time.Millisecond)
	require.Equal(t, geom.R(64, 0, 32, 32), s.FrameRect())

	s.Activate("attack")
	require.Equal(t, "attack", s.Active())
	require.Equal(t, geom.R(0, 32, 32, 32), s.FrameRect(), "switch resets to frame 0")

	s.Activate("walk")
	require.Equal(t, geom.R(0, 0, 32, 32), s.FrameRect())
}

func TestActivateSameClipKeepsPosition(t *testing.T) {
	walk, attack := testClips()
	s := NewState(walk, attack)

	s.Advance(150 * time.Millisecond)
	before := s.FrameRect()
	s.Activate("walk")
	require.Equal(t, before, s.FrameRect(), "re-activating the active clip must not restart it")
}

func TestActivateUnknownClipIgnored(t *testing.T) {
	walk, _ := testClips()
	s := NewState(walk)
	s.Activate("no-such-clip")
	require.Equal(t, "walk", s.Active())
}

func TestDuplicateClipNamePanics(t *testing.T) {
	walk, _ := testClips()
	require.Panics(t, func() { NewState(walk, walk) })
}
