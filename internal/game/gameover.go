package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/emberfield/game/internal/input"
)

// gracePeriod is the window after entering GameOver during which all input
// is ignored, so the key press that caused death cannot immediately pick an
// outcome.
const gracePeriod = time.Second

// gameOverState is transient: it exists only while the player is in
// GameOver and is reset whenever GameOver is (re)entered.
type gameOverState struct {
	elapsed            time.Duration
	restartHighlighted bool
	toggle             input.Edge
	selectHandled      bool
}

// enterGameOver arms the grace timer and defaults the selector to restart.
func (g *Game) enterGameOver() {
	g.inGameOver = true
	g.over = gameOverState{restartHighlighted: true}
	g.log.Info("game over", zap.Int("score", g.sim.Player.Score()))
}

// updateGameOver runs the restart/quit selector state machine.
func (g *Game) updateGameOver(dt time.Duration) {
	st := &g.over
	st.elapsed += dt

	toggleDown := g.in.Pressed(input.KeyToggle)
	selectDown := g.in.Pressed(input.KeySelect) || g.in.Pressed(input.KeySelectAlt)

	if st.elapsed < gracePeriod {
		// Keep the edge detectors fed so keys held across the grace
		// boundary do not read as fresh presses when it ends.
		st.toggle.Rising(toggleDown)
		st.selectHandled = selectDown
		return
	}

	if st.toggle.Rising(toggleDown) {
		st.restartHighlighted = !st.restartHighlighted
	}

	switch {
	case selectDown && !st.selectHandled:
		st.selectHandled = true
		if st.restartHighlighted {
			if err := g.resetSession(); err != nil {
				// The level loaded at startup; failing to reload it
				// mid-run leaves nothing to play. Treat as quit.
				g.log.Error("restart failed", zap.Error(err))
				g.quit = true
			}
		} else {
			g.log.Info("quit selected")
			g.quit = true
		}
	case !selectDown:
		st.selectHandled = false
	}
}
