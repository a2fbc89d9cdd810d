package world

import (
	"github.com/emberfield/game/internal/anim"
	"github.com/emberfield/game/internal/geom"
	"github.com/emberfield/game/internal/render"
)

// Mode is the player's top-level state.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeGameOver
)

// Facing is the player's movement heading, used for walk clip selection.
type Facing uint8

const (
	FaceDown Facing = iota
	FaceUp
	FaceLeft
	FaceRight
)

// Player is the singleton-per-session player entity. It is created once at
// world setup and recreated, not mutated in place, on restart.
type Player struct {
	Sprite
	health    int
	maxHealth int
	score     int
	mode      Mode

	Face   Facing
	Moving bool
}

// NewPlayer creates a player at full health in Normal mode.
func NewPlayer(id ID, pos geom.Point, tex render.Texture, st *anim.State, w, h float64, maxHealth int) *Player {
	return &Player{
		Sprite:    NewSprite(id, pos, tex, st, w, h),
		health:    maxHealth,
		maxHealth: maxHealth,
	}
}

func (p *Player) Health() int    { return p.health }
func (p *Player) MaxHealth() int { return p.maxHealth }
func (p *Player) Score() int     { return p.score }
func (p *Player) Mode() Mode     { return p.mode }

// AddScore increases the score. Score only ever grows.
func (p *Player) AddScore(n int) {
	if n < 0 {
		return
	}
	p.score += n
}

// Damage reduces health with a floor at zero. The frame health reaches zero
// the mode flips to GameOver; returns true on that transition. Once in
// GameOver there is no path back except a full session restart.
func (p *Player) Damage(n int) bool {
	if p.mode == ModeGameOver || n <= 0 {
		return false
	}
	p.health -= n
	if p.health <= 0 {
		p.health = 0
		p.mode = ModeGameOver
		return true
	}
	return false
}

// SetHealth overrides health, clamped to [0, max]. Used by scripts and
// tests; does not trigger the game-over transition on its own; the next
// Damage call does.
func (p *Player) SetHealth(h int) {
	if h < 0 {
		h = 0
	}
	if h > p.maxHealth {
		h = p.maxHealth
	}
	p.health = h
}
