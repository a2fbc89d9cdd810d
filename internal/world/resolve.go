package world

import "github.com/emberfield/game/internal/geom"

// Default interaction tuning. The resolver takes explicit values so tests
// and config can vary them; these are the shipped numbers.
const (
	DefaultPickupRange  = 32.0 // box distance in world units, per axis
	DefaultHazardDamage = 20
	pickupScore         = 1
)

// Resolver performs the per-frame proximity checks: collectible pickup and
// expiry-driven hazard damage. It runs interleaved with the render pass;
// Inspect is called for each renderable as it is drawn, removals are queued
// and the frame loop applies them once the pass completes.
type Resolver struct {
	PickupRange  float64
	HazardDamage int
}

// NewResolver returns a resolver with the shipped tuning.
func NewResolver() *Resolver {
	return &Resolver{PickupRange: DefaultPickupRange, HazardDamage: DefaultHazardDamage}
}

// Inspect examines one renderable against the player. Dispatch is on
// capability: collectibles are picked up in range, temporaries are removed
// at expiry and damage the player only at that moment, and only if the
// player is still nearby. Entities with neither capability (the player
// itself) pass through untouched.
func (rv *Resolver) Inspect(sim *Sim, e Renderable) {
	switch t := e.(type) {
	case Collectible:
		if !geom.WithinBox(e.Pos(), sim.Player.Pos(), rv.PickupRange) {
			return
		}
		sim.Player.AddScore(pickupScore)
		sim.LiveCollectibles--
		sim.Reg.QueueRemoval(e.ID())
	case Temporary:
		if !t.Expired(sim.Now()) {
			return
		}
		sim.Reg.QueueRemoval(e.ID())
		if geom.WithinBox(e.Pos(), sim.Player.Pos(), rv.PickupRange) {
			sim.Player.Damage(rv.HazardDamage)
		}
	}
}
