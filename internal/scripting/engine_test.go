package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSim records script calls against the sim API.
type fakeSim struct {
	collectibles [][2]float64
	hazards      [][2]float64
	score        int
	health       int
	entities     int
}

func (f *fakeSim) SpawnCollectible(x, y float64) { f.collectibles = append(f.collectibles, [2]float64{x, y}) }
func (f *fakeSim) SpawnHazard(x, y float64)      { f.hazards = append(f.hazards, [2]float64{x, y}) }
func (f *fakeSim) PlayerPos() (float64, float64) { return 64, 96 }
func (f *fakeSim) Score() int                    { return f.score }
func (f *fakeSim) Health() int                   { return f.health }
func (f *fakeSim) EntityCount() int              { return f.entities }
func (f *fakeSim) WorldSize() (float64, float64) { return 640, 480 }

func writeScripts(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return dir
}

func TestExecuteAllRunsRegisteredHandlers(t *testing.T) {
	dir := writeScripts(t, map[string]string{
		"world/spawner.lua": `
register_tick(function(sim)
	if sim.score() >= 5 then
		local x, y = sim.player_pos()
		sim.spawn_hazard(x + 10, y)
	end
	sim.spawn_collectible(100, 200)
end)
`,
	})

	e, err := NewEngine(dir, zap.NewNop())
	require.NoError(t, err)
	defer e.Close()
	require.Equal(t, 1, e.HandlerCount())

	sim := &fakeSim{score: 3}
	e.ExecuteAll(sim)
	require.Equal(t, [][2]float64{{100, 200}}, sim.collectibles)
	require.Empty(t, sim.hazards)

	sim.score = 5
	e.ExecuteAll(sim)
	require.Equal(t, [][2]float64{{74, 96}}, sim.hazards)
}

func TestHandlerErrorDoesNotStopOthers(t *testing.T) {
	dir := writeScripts(t, map[string]string{
		// Load order is name order: a.lua's handler errors at tick time,
		// b.lua's must still run.
		"a.lua": `register_tick(function(sim) error("boom") end)`,
		"b.lua": `register_tick(function(sim) sim.spawn_collectible(1, 2) end)`,
	})

	e, err := NewEngine(dir, zap.NewNop())
	require.NoError(t, err)
	defer e.Close()
	require.Equal(t, 2, e.HandlerCount())

	sim := &fakeSim{}
	e.ExecuteAll(sim)
	require.Len(t, sim.collectibles, 1)
}

func TestBrokenScriptIsFatalAtLoad(t *testing.T) {
	dir := writeScripts(t, map[string]string{
		"bad.lua": `this is not lua`,
	})
	_, err := NewEngine(dir, zap.NewNop())
	require.Error(t, err)
}

func TestMissingScriptsDirIsEmptyEngine(t *testing.T) {
	e, err := NewEngine(filepath.Join(t.TempDir(), "no-such-dir"), zap.NewNop())
	require.NoError(t, err)
	defer e.Close()
	require.Equal(t, 0, e.HandlerCount())
}
