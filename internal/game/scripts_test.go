package game

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emberfield/game/internal/config"
	"github.com/emberfield/game/internal/geom"
	"github.com/emberfield/game/internal/input/inputtest"
	"github.com/emberfield/game/internal/render/rendertest"
	"github.com/emberfield/game/internal/scripting"
	"github.com/emberfield/game/internal/world"
)

func TestScriptTickSpawnsThroughGame(t *testing.T) {
	dir := t.TempDir()
	levelPath := filepath.Join(dir, "arena.yaml")
	require.NoError(t, os.WriteFile(levelPath, []byte(testLevelYAML), 0o644))

	scriptsDir := filepath.Join(dir, "scripts")
	require.NoError(t, os.MkdirAll(scriptsDir, 0o755))
	src := `
register_tick(function(sim)
    if sim.score() == 0 and sim.entity_count() < 2 then
        sim.spawn_collectible(48, 48)
    end
end)
`
	require.NoError(t, os.WriteFile(filepath.Join(scriptsDir, "drip.lua"), []byte(src), 0o644))

	eng, err := scripting.NewEngine(scriptsDir, zap.NewNop())
	require.NoError(t, err)
	defer eng.Close()
	require.Equal(t, 1, eng.HandlerCount())

	cfg := config.Defaults()
	cfg.Window.Width = 400
	cfg.Window.Height = 300
	cfg.Paths.Level = levelPath
	cfg.Paths.Assets = filepath.Join(dir, "assets")

	g, err := New(cfg, &rendertest.Backend{}, &inputtest.Source{}, eng, rand.New(rand.NewSource(1)), zap.NewNop())
	require.NoError(t, err)

	g.Update(16 * time.Millisecond)

	var scripted world.Renderable
	g.Sim().Reg.ForEachRenderable(func(e world.Renderable) {
		if e.Pos() == (geom.Point{X: 48, Y: 48}) {
			scripted = e
		}
	})
	require.NotNil(t, scripted, "tick handler spawned a collectible at (48, 48)")
	require.IsType(t, &world.Ember{}, scripted)
}
