// Package world owns the frame-synchronous simulation state: the entity
// registry, the player, spawn policies and the proximity resolver. All of it
// is single-owner (the frame loop), so no locks; mutation during iteration is
// handled by buffering removals.
package world

import (
	"time"

	"github.com/emberfield/game/internal/anim"
	"github.com/emberfield/game/internal/geom"
	"github.com/emberfield/game/internal/render"
)

// ID is a session-unique entity identity. IDs are assigned monotonically by
// the Sim and never reused within a session.
type ID int64

// Entity is anything with identity and a world position.
type Entity interface {
	ID() ID
	Pos() geom.Point
	SetPos(geom.Point)
}

// Renderable is an entity with an animation binding that draws itself
// through the camera. Pos is the sprite's center in world units.
type Renderable interface {
	Entity
	Anim() *anim.State
	Texture() render.Texture
	// Size is the destination footprint in world units.
	Size() (w, h float64)
}

// Temporary is a renderable with a fixed lifespan, measured against the
// Sim clock. Used for transient hazards.
type Temporary interface {
	Renderable
	Expired(now time.Duration) bool
}

// Collectible is a renderable removed and scored when the player comes into
// proximity range. The unexported tag keeps the capability set closed.
type Collectible interface {
	Renderable
	collectible()
}

// Sprite is the common renderable base embedded by all concrete entities.
type Sprite struct {
	id   ID
	pos  geom.Point
	st   *anim.State
	tex  render.Texture
	w, h float64
}

// NewSprite builds the renderable base. The animation state must be owned
// exclusively by this sprite.
func NewSprite(id ID, pos geom.Point, tex render.Texture, st *anim.State, w, h float64) Sprite {
	return Sprite{id: id, pos: pos, st: st, tex: tex, w: w, h: h}
}

func (s *Sprite) ID() ID                  { return s.id }
func (s *Sprite) Pos() geom.Point         { return s.pos }
func (s *Sprite) SetPos(p geom.Point)     { s.pos = p }
func (s *Sprite) Anim() *anim.State       { return s.st }
func (s *Sprite) Texture() render.Texture { return s.tex }
func (s *Sprite) Size() (float64, float64) {
	return s.w, s.h
}

// Ember is a collectible pickup.
type Ember struct {
	Sprite
}

func (*Ember) collectible() {}

// NewEmber creates a collectible at the given position.
func NewEmber(id ID, pos geom.Point, tex render.Texture, st *anim.State, w, h float64) *Ember {
	return &Ember{Sprite: NewSprite(id, pos, tex, st, w, h)}
}

// Bomb is a transient hazard: it lives for a fixed lifespan from its
// creation timestamp and damages the player at the moment it expires if the
// player is still nearby.
type Bomb struct {
	Sprite
	born     time.Duration // Sim clock at creation
	lifespan time.Duration
}

// NewBomb creates a hazard armed at Sim time now.
func NewBomb(id ID, pos geom.Point, tex render.Texture, st *anim.State, w, h float64, now, lifespan time.Duration) *Bomb {
	return &Bomb{Sprite: NewSprite(id, pos, tex, st, w, h), born: now, lifespan: lifespan}
}

// Expired reports whether the bomb's lifespan has elapsed at Sim time now.
func (b *Bomb) Expired(now time.Duration) bool {
	return now-b.born >= b.lifespan
}
