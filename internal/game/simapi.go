package game

import (
	"github.com/emberfield/game/internal/geom"
	"github.com/emberfield/game/internal/scripting"
	"github.com/emberfield/game/internal/world"
)

// simAPI adapts the live session to the surface scripts see. Scripts may
// spawn and query entities but must not remove anything the render pass is
// about to iterate. The API exposes no removal at all, which enforces that
// at the boundary.
type simAPI struct {
	sim *world.Sim
}

var _ scripting.Sim = (*simAPI)(nil)

func (a *simAPI) SpawnCollectible(x, y float64) {
	a.sim.SpawnCollectible(geom.Point{X: x, Y: y})
}

func (a *simAPI) SpawnHazard(x, y float64) {
	a.sim.SpawnHazard(geom.Point{X: x, Y: y})
}

func (a *simAPI) PlayerPos() (float64, float64) {
	p := a.sim.Player.Pos()
	return p.X, p.Y
}

func (a *simAPI) Score() int {
	return a.sim.Player.Score()
}

func (a *simAPI) Health() int {
	return a.sim.Player.Health()
}

func (a *simAPI) EntityCount() int {
	return a.sim.Reg.Len()
}

func (a *simAPI) WorldSize() (float64, float64) {
	b := a.sim.Bounds()
	return b.W, b.H
}
