// Package config holds the game settings. Values come from built-in defaults,
// then an optional YAML file, then TILEWORLD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TILEWORLD_"

// Config holds all settings for a run.
type Config struct {
	Window WindowConfig `yaml:"window" envPrefix:"WINDOW_"`
	Level  LevelConfig  `yaml:"level" envPrefix:"LEVEL_"`
	Player PlayerConfig `yaml:"player" envPrefix:"PLAYER_"`
	Camera CameraConfig `yaml:"camera" envPrefix:"CAMERA_"`

	Stage string `yaml:"stage" env:"STAGE"` // grid, pan, move or follow
	Debug bool   `yaml:"debug" env:"DEBUG"` // Show the debug overlay at start
}

// WindowConfig defines the window and logical screen.
type WindowConfig struct {
	Width     int    `yaml:"width" env:"WIDTH"`
	Height    int    `yaml:"height" env:"HEIGHT"`
	Title     string `yaml:"title" env:"TITLE"`
	Resizable bool   `yaml:"resizable" env:"RESIZABLE"`
	TPS       int    `yaml:"tps" env:"TPS"` // Updates per second
}

// LevelConfig selects the level.
type LevelConfig struct {
	Path  string `yaml:"path" env:"PATH"`   // Empty means the built-in level
	Watch bool   `yaml:"watch" env:"WATCH"` // Reload the level file when it changes
}

// PlayerConfig defines player movement and animation.
type PlayerConfig struct {
	Speed         float64 `yaml:"speed" env:"SPEED"` // Pixels per frame
	Width         int     `yaml:"width" env:"WIDTH"`
	Height        int     `yaml:"height" env:"HEIGHT"`
	TicksPerFrame int     `yaml:"ticks_per_frame" env:"TICKS_PER_FRAME"`
	SheetPath     string  `yaml:"sheet" env:"SHEET"` // Sprite sheet definition, empty for the generated one
}

// CameraConfig defines camera behaviour.
type CameraConfig struct {
	Smoothing float64 `yaml:"smoothing" env:"SMOOTHING"` // Fraction of distance covered per frame
	PanSpeed  float64 `yaml:"pan_speed" env:"PAN_SPEED"` // Pixels per frame in the pan stage
}

// Stages in the order Tab cycles through them.
var Stages = []string{"grid", "pan", "move", "follow"}

// Default returns the settings of the original prototypes.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "tileworld",
			TPS:    60,
		},
		Player: PlayerConfig{
			Speed:         4,
			Width:         48,
			Height:        48,
			TicksPerFrame: 8,
		},
		Camera: CameraConfig{
			Smoothing: 0.1,
			PanSpeed:  4,
		},
		Stage: "follow",
	}
}

// Load builds the configuration from defaults, the YAML file at path (if it
// exists) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Keep defaults.
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps: %d", c.Window.TPS)
	}
	if c.Player.Speed < 0 {
		return fmt.Errorf("invalid player speed: %v", c.Player.Speed)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("invalid player size: %dx%d", c.Player.Width, c.Player.Height)
	}
	if c.Player.TicksPerFrame <= 0 {
		return fmt.Errorf("invalid ticks per frame: %d", c.Player.TicksPerFrame)
	}
	if c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		return fmt.Errorf("camera smoothing must be in (0, 1], got %v", c.Camera.Smoothing)
	}
	if c.Level.Watch && c.Level.Path == "" {
		return fmt.Errorf("level watch needs a level path")
	}
	if StageIndex(c.Stage) < 0 {
		return fmt.Errorf("unknown stage %q", c.Stage)
	}
	return nil
}

// StageIndex returns the position of name in Stages, or -1.
func StageIndex(name string) int {
	for i, s := range Stages {
		if s == name {
			return i
		}
	}
	return -1
}
