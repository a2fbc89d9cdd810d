package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emberfield/game/internal/input"
	"github.com/emberfield/game/internal/world"
)

func killPlayer(g *Game) {
	p := g.Sim().Player
	p.Damage(p.MaxHealth())
	g.Update(16 * time.Millisecond) // enters GameOver
}

func TestGraceSwallowsHeldSelect(t *testing.T) {
	g, _, in := newTestGame(t)
	g.Sim().Player.AddScore(3)

	in.Press(input.KeySelect)
	killPlayer(g)

	// The press that was held when the grace period ends must not pick
	// an outcome.
	g.Update(2 * time.Second)
	require.Equal(t, world.ModeGameOver, g.Sim().Player.Mode())
	require.False(t, g.quit)

	// A fresh press after release does.
	in.Release(input.KeySelect)
	g.Update(16 * time.Millisecond)
	in.Press(input.KeySelect)
	g.Update(16 * time.Millisecond)

	p := g.Sim().Player
	require.Equal(t, world.ModeNormal, p.Mode())
	require.Equal(t, p.MaxHealth(), p.Health())
	require.Equal(t, 0, p.Score())
}

func TestGraceSwallowsHeldToggle(t *testing.T) {
	g, _, in := newTestGame(t)

	in.Press(input.KeyToggle)
	killPlayer(g)
	g.Update(2 * time.Second)

	require.True(t, g.over.restartHighlighted, "hold from before the grace boundary does not flip")
}

func TestToggleFlipsSelectorOncePerPress(t *testing.T) {
	g, _, in := newTestGame(t)
	killPlayer(g)
	g.Update(2 * time.Second) // past the grace period

	in.Press(input.KeyToggle)
	g.Update(16 * time.Millisecond)
	g.Update(16 * time.Millisecond)
	g.Update(16 * time.Millisecond)
	require.False(t, g.over.restartHighlighted, "held toggle flips exactly once")

	in.Release(input.KeyToggle)
	g.Update(16 * time.Millisecond)
	in.Press(input.KeyToggle)
	g.Update(16 * time.Millisecond)
	require.True(t, g.over.restartHighlighted)
}

func TestRestartRebuildsSession(t *testing.T) {
	g, _, in := newTestGame(t)
	g.Update(16 * time.Millisecond) // populate the first collectible batch
	g.Sim().Player.AddScore(7)
	require.Equal(t, 11, g.Sim().Reg.Len())

	killPlayer(g)
	g.Update(2 * time.Second)
	in.Press(input.KeySelect)
	g.Update(16 * time.Millisecond)

	p := g.Sim().Player
	require.Equal(t, world.ModeNormal, p.Mode())
	require.Equal(t, 0, p.Score())
	require.Equal(t, p.MaxHealth(), p.Health())
	require.Equal(t, 1, g.Sim().Reg.Len(), "only the player survives a restart")
	require.Equal(t, 0, g.Sim().LiveCollectibles)
	require.False(t, g.inGameOver)
}

func TestQuitPresentsFinalFrameThenStops(t *testing.T) {
	g, b, in := newTestGame(t)
	killPlayer(g)
	g.Update(2 * time.Second)

	in.Press(input.KeyToggle)
	g.Update(16 * time.Millisecond) // highlight quit
	in.Release(input.KeyToggle)
	in.Press(input.KeySelect)
	g.Update(16 * time.Millisecond)

	require.True(t, g.quit)
	require.False(t, g.Done(), "final frame not yet shown")

	b.Reset()
	g.Render()
	require.True(t, g.Done())
	require.Equal(t, 1, b.Clears)
	require.Equal(t, 1, b.Presents)
	require.Empty(t, b.Draws)
	require.Empty(t, b.Texts, "final frame is a cleared screen only")

	// Further frames are inert.
	g.Update(16 * time.Millisecond)
	require.True(t, g.Done())
}

func TestGameOverOverlayShowsScore(t *testing.T) {
	g, b, _ := newTestGame(t)
	g.Sim().Player.AddScore(5)
	killPlayer(g)

	b.Reset()
	g.Render()

	var texts []string
	for _, op := range b.Texts {
		texts = append(texts, op.Text)
	}
	require.Contains(t, texts, "GAME OVER")
	require.Contains(t, texts, "Score 5")
}
