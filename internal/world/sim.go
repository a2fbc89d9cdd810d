package world

import (
	"time"

	"go.uber.org/zap"

	"github.com/emberfield/game/internal/geom"
)

// CollectibleFactory builds a concrete collectible for a spawn request.
// Factories carry the texture/animation bindings so the simulation itself
// stays free of asset knowledge.
type CollectibleFactory func(id ID, pos geom.Point) Collectible

// HazardFactory builds a concrete hazard armed at Sim time now.
type HazardFactory func(id ID, pos geom.Point, now time.Duration) Temporary

// Sim is the per-session simulation context: registry, player, the session
// clock and the global counters the spawn policies read. One Sim per
// session; a restart builds a fresh one. Single-owner and frame-synchronous,
// never shared across goroutines.
type Sim struct {
	Reg    *Registry
	Player *Player

	// LiveCollectibles counts collectibles currently in the world. The
	// spawner refills a batch when it reaches zero.
	LiveCollectibles int

	bounds geom.Rect
	nextID ID
	now    time.Duration

	makeCollectible CollectibleFactory
	makeHazard      HazardFactory

	log *zap.Logger
}

// NewSim creates a simulation over the given world bounds.
func NewSim(bounds geom.Rect, mc CollectibleFactory, mh HazardFactory, log *zap.Logger) *Sim {
	return &Sim{
		Reg:             NewRegistry(),
		bounds:          bounds,
		makeCollectible: mc,
		makeHazard:      mh,
		log:             log,
	}
}

// NextID returns a fresh session-unique identity. Monotonic, never reused.
func (s *Sim) NextID() ID {
	s.nextID++
	return s.nextID
}

// Advance moves the session clock forward. All expiry and spawn timers are
// measured against this clock.
func (s *Sim) Advance(dt time.Duration) {
	s.now += dt
}

// Now returns the session clock.
func (s *Sim) Now() time.Duration {
	return s.now
}

// Bounds returns the world bounds in world units.
func (s *Sim) Bounds() geom.Rect {
	return s.bounds
}

// AttachPlayer registers the session's player entity. Called once at world
// setup.
func (s *Sim) AttachPlayer(p *Player) {
	s.Player = p
	s.Reg.Insert(p)
}

// SpawnCollectible places a collectible and bumps the live counter. Used by
// the spawner's batch refill and by scripts.
func (s *Sim) SpawnCollectible(pos geom.Point) Collectible {
	e := s.makeCollectible(s.NextID(), pos)
	s.Reg.Insert(e)
	s.LiveCollectibles++
	return e
}

// SpawnHazard places a hazard armed at the current session time. Used by
// the spawner, bomb placement and scripts.
func (s *Sim) SpawnHazard(pos geom.Point) Temporary {
	e := s.makeHazard(s.NextID(), pos, s.now)
	s.Reg.Insert(e)
	s.log.Debug("hazard armed",
		zap.Int64("id", int64(e.ID())),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y))
	return e
}
