package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
width = 1024

[paths]
level = "data/levels/caves.yaml"

[game]
player_speed = 200.0
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 1024, cfg.Window.Width)
	require.Equal(t, 600, cfg.Window.Height, "unset fields keep defaults")
	require.Equal(t, "data/levels/caves.yaml", cfg.Paths.Level)
	require.Equal(t, 200.0, cfg.Game.PlayerSpeed)
	require.Equal(t, 100, cfg.Game.MaxHealth)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\nwidth="), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
