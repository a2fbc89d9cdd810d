// Package game owns the per-frame orchestration: input sampling, player
// update, the scripting hook, spawn policies, the render pass with its
// interleaved interaction resolution, and the game-over state machine. Each
// frame is a strict single-threaded sequence; there is no cancellation and
// a frame always runs to completion.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/emberfield/game/internal/config"
	"github.com/emberfield/game/internal/geom"
	"github.com/emberfield/game/internal/input"
	"github.com/emberfield/game/internal/level"
	"github.com/emberfield/game/internal/render"
	"github.com/emberfield/game/internal/scripting"
	"github.com/emberfield/game/internal/world"
)

// Game is the running application: long-lived collaborators plus the
// current session. A restart swaps the session, never the collaborators.
type Game struct {
	cfg     *config.Config
	log     *zap.Logger
	backend render.Backend
	in      input.Source
	scripts *scripting.Engine
	rng     *rand.Rand
	assets  *assets

	// Session state, rebuilt from scratch on restart.
	lv       *level.Level
	tiles    *render.TileRenderer
	cam      *render.Camera
	sim      *world.Sim
	spawner  *world.Spawner
	resolver *world.Resolver

	frameDt    time.Duration
	bombEdge   input.Edge
	over       gameOverState
	inGameOver bool

	quit           bool
	finalPresented bool
}

// New loads assets and the first session. Any failure here is a setup
// failure: fatal, no partial world.
func New(cfg *config.Config, backend render.Backend, in input.Source, scripts *scripting.Engine, rng *rand.Rand, log *zap.Logger) (*Game, error) {
	a, err := loadAssets(backend, cfg.Paths.Assets)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		log:     log,
		backend: backend,
		in:      in,
		scripts: scripts,
		rng:     rng,
		assets:  a,
	}
	if err := g.resetSession(); err != nil {
		return nil, err
	}
	return g, nil
}

// resetSession builds a fresh world: level reloaded, new sim, new player at
// full health, empty registry. Used at startup and by the restart path.
func (g *Game) resetSession() error {
	lv, err := level.Load(g.cfg.Paths.Level)
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}
	tiles, err := render.NewTileRenderer(lv, g.backend, g.log)
	if err != nil {
		return fmt.Errorf("tile renderer: %w", err)
	}

	bounds := geom.R(0, 0, lv.PixelWidth(), lv.PixelHeight())
	cam := render.NewCamera(float64(g.cfg.Window.Width), float64(g.cfg.Window.Height))
	cam.SetWorldBounds(bounds)

	a := g.assets
	lifespan := g.cfg.Game.HazardLifespan
	sim := world.NewSim(bounds,
		func(id world.ID, pos geom.Point) world.Collectible {
			return world.NewEmber(id, pos, a.ember, emberAnim(), frameSize, frameSize)
		},
		func(id world.ID, pos geom.Point, now time.Duration) world.Temporary {
			return world.NewBomb(id, pos, a.bomb, bombAnim(), frameSize, frameSize, now, lifespan)
		},
		g.log,
	)

	player := world.NewPlayer(sim.NextID(), bounds.Center(), a.player, playerAnim(), frameSize, frameSize, g.cfg.Game.MaxHealth)
	sim.AttachPlayer(player)
	cam.LookAt(player.Pos())

	g.lv = lv
	g.tiles = tiles
	g.cam = cam
	g.sim = sim
	g.spawner = world.NewSpawner(g.rng)
	g.spawner.CollectibleBatch = g.cfg.Game.CollectibleBatch
	g.spawner.HazardBase = g.cfg.Game.HazardWaveBase
	g.spawner.HazardInterval = g.cfg.Game.HazardInterval
	g.resolver = &world.Resolver{
		PickupRange:  g.cfg.Game.PickupRange,
		HazardDamage: g.cfg.Game.HazardDamage,
	}
	g.inGameOver = false
	g.over = gameOverState{}
	g.bombEdge.Reset()

	g.log.Info("session ready",
		zap.String("level", lv.Name),
		zap.Float64("world_w", bounds.W),
		zap.Float64("world_h", bounds.H))
	return nil
}

// Update advances the simulation by dt. In Normal mode this is the strict
// frame sequence: player update, scripting hook, bomb placement, spawn
// policies, camera. The render pass (with interaction resolution) follows
// in Render.
func (g *Game) Update(dt time.Duration) {
	if g.quit {
		return
	}
	g.frameDt = dt

	if g.sim.Player.Mode() == world.ModeGameOver {
		if !g.inGameOver {
			g.enterGameOver()
		}
		g.updateGameOver(dt)
		return
	}

	g.sim.Advance(dt)
	g.updatePlayer(dt)
	g.advanceAnimations(dt)
	if g.scripts != nil {
		g.scripts.ExecuteAll(&simAPI{sim: g.sim})
	}
	g.placeHazards()
	g.spawner.Update(g.sim, dt)
	g.cam.LookAt(g.sim.Player.Pos())
}

// updatePlayer applies directional input and selects the attack, walk or
// idle clip.
func (g *Game) updatePlayer(dt time.Duration) {
	p := g.sim.Player
	speed := g.cfg.Game.PlayerSpeed * dt.Seconds()

	var dx, dy float64
	if g.in.Pressed(input.KeyLeft) {
		dx -= speed
		p.Face = world.FaceLeft
	}
	if g.in.Pressed(input.KeyRight) {
		dx += speed
		p.Face = world.FaceRight
	}
	if g.in.Pressed(input.KeyUp) {
		dy -= speed
		p.Face = world.FaceUp
	}
	if g.in.Pressed(input.KeyDown) {
		dy += speed
		p.Face = world.FaceDown
	}
	p.Moving = dx != 0 || dy != 0

	if p.Moving {
		pos := p.Pos()
		pos.X = clamp(pos.X+dx, 0, g.sim.Bounds().W)
		pos.Y = clamp(pos.Y+dy, 0, g.sim.Bounds().H)
		p.SetPos(pos)
	}

	switch {
	case g.in.Pressed(input.KeyAttack):
		p.Anim().Activate(clipAttack)
	case p.Moving:
		p.Anim().Activate(walkClip(p.Face))
	default:
		p.Anim().Activate(clipIdle)
	}
}

func walkClip(f world.Facing) string {
	switch f {
	case world.FaceUp:
		return clipWalkUp
	case world.FaceLeft:
		return clipWalkLeft
	case world.FaceRight:
		return clipWalkRight
	default:
		return clipWalkDown
	}
}

// advanceAnimations steps every renderable's clip by the frame delta.
func (g *Game) advanceAnimations(dt time.Duration) {
	g.sim.Reg.ForEachRenderable(func(e world.Renderable) {
		e.Anim().Advance(dt)
	})
}

// placeHazards arms a bomb at the player on the bomb key's press edge, and
// at the clicked world position on a mouse click.
func (g *Game) placeHazards() {
	if g.bombEdge.Rising(g.in.Pressed(input.KeyBomb)) {
		g.sim.SpawnHazard(g.sim.Player.Pos())
	}
	if pt, ok := g.in.Clicked(); ok {
		g.sim.SpawnHazard(g.cam.ToWorld(pt))
	}
}

// Render draws the frame. The screen is always cleared first. In GameOver
// the pass short-circuits to the overlay and skips world and entity
// rendering entirely. Otherwise tiles are composited, then every renderable
// is drawn with the interaction resolver running alongside; buffered
// removals apply once the pass completes.
func (g *Game) Render() {
	b := g.backend
	b.Clear()

	if g.quit {
		// Final cleared frame before the process exits.
		b.Present()
		g.finalPresented = true
		return
	}
	if g.sim.Player.Mode() == world.ModeGameOver {
		g.drawGameOver()
		b.Present()
		return
	}

	g.tiles.Draw(b, g.cam)

	g.sim.Reg.ForEachRenderable(func(e world.Renderable) {
		src := e.Anim().FrameRect()
		w, h := e.Size()
		pos := e.Pos()
		dst := g.cam.ToScreen(geom.R(pos.X-w/2, pos.Y-h/2, w, h))
		b.DrawTexture(e.Texture(), src, dst)
		g.resolver.Inspect(g.sim, e)
	})
	removed := g.sim.Reg.ApplyRemovals()
	if len(removed) > 0 {
		g.log.Debug("entities removed", zap.Int("count", len(removed)))
	}

	g.drawHUD()
	b.Present()
}

// Done reports that quit was selected and the final frame has been shown;
// the platform loop should terminate.
func (g *Game) Done() bool {
	return g.quit && g.finalPresented
}

// Sim exposes the session's simulation context, mainly for tests.
func (g *Game) Sim() *world.Sim {
	return g.sim
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
