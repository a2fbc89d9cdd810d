package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Paths   PathsConfig   `toml:"paths"`
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type PathsConfig struct {
	Level   string `toml:"level"`   // level YAML file
	Scripts string `toml:"scripts"` // lua scripts directory
	Assets  string `toml:"assets"`  // sprite sheet directory
}

type GameConfig struct {
	PlayerSpeed    float64       `toml:"player_speed"` // world units per second
	MaxHealth      int           `toml:"max_health"`
	PickupRange    float64       `toml:"pickup_range"` // box distance per axis
	HazardDamage   int           `toml:"hazard_damage"`
	HazardLifespan time.Duration `toml:"hazard_lifespan"`

	CollectibleBatch int           `toml:"collectible_batch"` // refill size when none remain
	HazardWaveBase   int           `toml:"hazard_wave_base"`  // wave size before the score bonus
	HazardInterval   time.Duration `toml:"hazard_interval"`   // wave interval at score zero
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the shipped configuration; Load overlays the file on top.
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Emberfield",
			Width:  800,
			Height: 600,
		},
		Paths: PathsConfig{
			Level:   "data/levels/meadow.yaml",
			Scripts: "scripts",
			Assets:  "assets",
		},
		Game: GameConfig{
			PlayerSpeed:    160,
			MaxHealth:      100,
			PickupRange:    32,
			HazardDamage:   20,
			HazardLifespan: 2 * time.Second,

			CollectibleBatch: 10,
			HazardWaveBase:   2,
			HazardInterval:   2 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
