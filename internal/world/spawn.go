package world

import (
	"math/rand"
	"time"

	"github.com/emberfield/game/internal/geom"
)

// Spawn policy tuning. Hazard escalation deliberately reads the raw score
// with different divisors for count and interval; the coupling is part of
// the difficulty curve, not an accident to normalize.
const (
	DefaultCollectibleBatch = 10
	DefaultHazardBase       = 2
	DefaultHazardInterval   = 2000 * time.Millisecond
	DefaultIntervalStep     = 100 * time.Millisecond
	DefaultIntervalFloor    = 100 * time.Millisecond
	DefaultScorePerStep     = 5
)

// Spawner runs the two independent batch policies each frame: collectible
// refills and time-driven hazard waves. The random source is injected so
// tests can substitute a seeded generator.
type Spawner struct {
	CollectibleBatch int
	HazardBase       int
	HazardInterval   time.Duration
	IntervalStep     time.Duration
	IntervalFloor    time.Duration
	ScorePerStep     int

	rng *rand.Rand
	acc time.Duration // elapsed since the last hazard wave
}

// NewSpawner creates a spawner with the shipped tuning over the given
// random source.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{
		CollectibleBatch: DefaultCollectibleBatch,
		HazardBase:       DefaultHazardBase,
		HazardInterval:   DefaultHazardInterval,
		IntervalStep:     DefaultIntervalStep,
		IntervalFloor:    DefaultIntervalFloor,
		ScorePerStep:     DefaultScorePerStep,
		rng:              rng,
	}
}

// Update runs both batch policies for one frame.
func (sp *Spawner) Update(sim *Sim, dt time.Duration) {
	sp.refillCollectibles(sim)
	sp.tickHazards(sim, dt)
}

// refillCollectibles places a full batch at uniform random positions when
// the live counter reaches zero. SpawnCollectible bumps the counter, so a
// refill from zero lands exactly on the batch size.
func (sp *Spawner) refillCollectibles(sim *Sim) {
	if sim.LiveCollectibles > 0 {
		return
	}
	for i := 0; i < sp.CollectibleBatch; i++ {
		sim.SpawnCollectible(sp.randomPoint(sim.Bounds()))
	}
}

// tickHazards accumulates frame time and, each time the accumulator crosses
// the current interval, resets it and places a wave of 2+score hazards. The
// interval shrinks by one step per ScorePerStep points, floored.
func (sp *Spawner) tickHazards(sim *Sim, dt time.Duration) {
	sp.acc += dt
	if sp.acc < sp.Interval(sim.Player.Score()) {
		return
	}
	sp.acc = 0
	count := sp.HazardBase + sim.Player.Score()
	for i := 0; i < count; i++ {
		sim.SpawnHazard(sp.randomPoint(sim.Bounds()))
	}
}

// Interval returns the hazard wave interval for a given score.
func (sp *Spawner) Interval(score int) time.Duration {
	iv := sp.HazardInterval - time.Duration(score/sp.ScorePerStep)*sp.IntervalStep
	if iv < sp.IntervalFloor {
		iv = sp.IntervalFloor
	}
	return iv
}

// randomPoint draws uniformly from [x, x+w) × [y, y+h).
func (sp *Spawner) randomPoint(b geom.Rect) geom.Point {
	return geom.Point{
		X: b.X + sp.rng.Float64()*b.W,
		Y: b.Y + sp.rng.Float64()*b.H,
	}
}
