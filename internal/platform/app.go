package platform

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/emberfield/game/internal/config"
	"github.com/emberfield/game/internal/game"
)

// maxFrameDt caps the per-frame delta so a stall (window dragged, machine
// asleep) does not land as one huge simulation step.
const maxFrameDt = 250 * time.Millisecond

// App adapts the game to Ebiten's run loop, feeding it a measured
// wall-clock delta each tick.
type App struct {
	g       *game.Game
	backend *Backend
	winW    int
	winH    int
	last    time.Time
}

func NewApp(g *game.Game, b *Backend, cfg *config.Config) *App {
	return &App{
		g:       g,
		backend: b,
		winW:    cfg.Window.Width,
		winH:    cfg.Window.Height,
	}
}

func (a *App) Update() error {
	if a.g.Done() {
		return ebiten.Termination
	}

	now := time.Now()
	dt := time.Second / 60
	if !a.last.IsZero() {
		dt = now.Sub(a.last)
		if dt > maxFrameDt {
			dt = maxFrameDt
		}
	}
	a.last = now

	a.g.Update(dt)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.backend.setScreen(screen)
	a.g.Render()
	a.backend.setScreen(nil)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.winW, a.winH
}

// Run opens the window and drives the game until quit is selected or the
// window is closed.
func Run(g *game.Game, b *Backend, cfg *config.Config) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(60)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewApp(g, b, cfg)); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
