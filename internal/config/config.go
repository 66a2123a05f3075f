package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "spacegame.json"

// Config holds everything the game reads at startup.
type Config struct {
	Window   WindowConfig   `mapstructure:"window"`
	Viewport ViewportConfig `mapstructure:"viewport"`
	FPS      int            `mapstructure:"fps"`
	LogLevel string         `mapstructure:"logLevel"`
	Player   PlayerConfig   `mapstructure:"player"`
	NPC      NPCConfig      `mapstructure:"npc"`
	Station  StationConfig  `mapstructure:"station"`
	Dust     DustConfig     `mapstructure:"dust"`
}

type WindowConfig struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Fullscreen bool   `mapstructure:"fullscreen"`
	Title      string `mapstructure:"title"`
}

// ViewportConfig sets the logical resolution as a fraction of the window.
type ViewportConfig struct {
	Scale int `mapstructure:"scale"`
}

type PlayerConfig struct {
	System string  `mapstructure:"system"`
	X      float64 `mapstructure:"x"`
	Y      float64 `mapstructure:"y"`
}

type NPCConfig struct {
	Label string  `mapstructure:"label"`
	X     float64 `mapstructure:"x"`
	Y     float64 `mapstructure:"y"`
}

type StationConfig struct {
	Name string  `mapstructure:"name"`
	X    float64 `mapstructure:"x"`
	Y    float64 `mapstructure:"y"`
}

// DustConfig controls the parallax field. Seed 0 means seed from the clock.
type DustConfig struct {
	Count int    `mapstructure:"count"`
	Seed  uint64 `mapstructure:"seed"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.title", "Spacegame")

	v.SetDefault("viewport.scale", 2)
	v.SetDefault("fps", 60)
	v.SetDefault("logLevel", "info")

	v.SetDefault("player.system", "alpha")
	v.SetDefault("player.x", 0.0)
	v.SetDefault("player.y", 0.0)

	v.SetDefault("npc.label", "NPC")
	v.SetDefault("npc.x", 20.0)
	v.SetDefault("npc.y", 20.0)

	v.SetDefault("station.name", "Outpost 3A")
	v.SetDefault("station.x", -120.0)
	v.SetDefault("station.y", -400.0)

	v.SetDefault("dust.count", 200)
	v.SetDefault("dust.seed", 0)
}

// Load reads configuration from configDir, falling back to defaults when no
// config file exists. SPACEGAME_* environment variables override both.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(strings.TrimSuffix(FileName, ".json"))
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("SPACEGAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the game cannot start with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Viewport.Scale <= 0:
		return fmt.Errorf("invalid viewport scale %d", c.Viewport.Scale)
	case c.FPS <= 0:
		return fmt.Errorf("invalid fps %d", c.FPS)
	case c.Dust.Count <= 0:
		return fmt.Errorf("invalid dust count %d", c.Dust.Count)
	}
	return nil
}

// ViewportSize returns the logical screen size the simulation runs at.
func (c *Config) ViewportSize() (int, int) {
	return c.Window.Width / c.Viewport.Scale, c.Window.Height / c.Viewport.Scale
}
