package game

import (
	"fmt"
	"image/color"

	"github.com/emberfield/game/internal/geom"
)

var (
	colBarBack   = color.RGBA{R: 32, G: 32, B: 32, A: 220}
	colBarFill   = color.RGBA{R: 90, G: 200, B: 90, A: 255}
	colText      = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	colDim       = color.RGBA{A: 180}
	colHighlight = color.RGBA{R: 250, G: 210, B: 80, A: 255}
)

// drawHUD overlays the health bar and score on top of the world.
func (g *Game) drawHUD() {
	b := g.backend
	p := g.sim.Player

	const barX, barY, barW, barH = 16.0, 16.0, 200.0, 16.0
	b.FillRect(geom.R(barX, barY, barW, barH), colBarBack)
	frac := float64(p.Health()) / float64(p.MaxHealth())
	if frac > 0 {
		b.FillRect(geom.R(barX, barY, barW*frac, barH), colBarFill)
	}

	b.DrawText(fmt.Sprintf("Score %d", p.Score()), 18, colText, geom.Point{X: barX, Y: barY + barH + 8})
}

// drawGameOver renders the game-over overlay: dimmed screen, title and the
// restart/quit selector. World and entity rendering is skipped entirely.
func (g *Game) drawGameOver() {
	b := g.backend
	w := float64(g.cfg.Window.Width)
	h := float64(g.cfg.Window.Height)

	b.FillRect(geom.R(0, 0, w, h), colDim)

	title := "GAME OVER"
	tw, _ := b.MeasureText(title, 48)
	b.DrawText(title, 48, colText, geom.Point{X: (w - tw) / 2, Y: h/2 - 96})

	score := fmt.Sprintf("Score %d", g.sim.Player.Score())
	sw, _ := b.MeasureText(score, 24)
	b.DrawText(score, 24, colText, geom.Point{X: (w - sw) / 2, Y: h/2 - 40})

	options := []struct {
		label       string
		highlighted bool
	}{
		{"Restart", g.over.restartHighlighted},
		{"Quit", !g.over.restartHighlighted},
	}
	y := h / 2 + 16
	for _, opt := range options {
		c := colText
		label := opt.label
		if opt.highlighted {
			c = colHighlight
			label = "> " + label
		}
		lw, _ := b.MeasureText(label, 28)
		b.DrawText(label, 28, c, geom.Point{X: (w - lw) / 2, Y: y})
		y += 40
	}
}
