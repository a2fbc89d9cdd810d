package world

import (
	"time"

	"go.uber.org/zap"

	"github.com/emberfield/game/internal/anim"
	"github.com/emberfield/game/internal/geom"
	"github.com/emberfield/game/internal/render/rendertest"
)

func testAnim() *anim.State {
	return anim.NewState(anim.Strip("idle", 0, 1, 32, 32, 100*time.Millisecond, true))
}

var testTex = &rendertest.Texture{Path: "test.png", W: 32, H: 32}

func newTestSim(bounds geom.Rect) *Sim {
	mc := func(id ID, pos geom.Point) Collectible {
		return NewEmber(id, pos, testTex, testAnim(), 32, 32)
	}
	mh := func(id ID, pos geom.Point, now time.Duration) Temporary {
		return NewBomb(id, pos, testTex, testAnim(), 32, 32, now, 2*time.Second)
	}
	return NewSim(bounds, mc, mh, zap.NewNop())
}

func newTestPlayer(sim *Sim, pos geom.Point) *Player {
	p := NewPlayer(sim.NextID(), pos, testTex, testAnim(), 32, 32, 100)
	sim.AttachPlayer(p)
	return p
}
