// Package config loads the runtime tuning values from YAML.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Config is the full runtime configuration.
type Config struct {
	Window  Window  `yaml:"window"`
	Physics Physics `yaml:"physics"`
	Player  Player  `yaml:"player"`
	Game    Game    `yaml:"game"`
	Log     Log     `yaml:"log"`
}

// Window describes the logical screen and the host window around it.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	Title  string `yaml:"title"`
}

// Physics holds the fixed-step clock and integrator settings.
type Physics struct {
	Step           float64 `yaml:"step"`
	MaxSteps       int     `yaml:"max_steps"`
	SpikeThreshold float64 `yaml:"spike_threshold"`
	Gravity        float64 `yaml:"gravity"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
}

// Player holds movement and inventory tuning.
type Player struct {
	Speed               float64 `yaml:"speed"`
	JumpSpeed           float64 `yaml:"jump_speed"`
	Lives               int     `yaml:"lives"`
	MaxLives            int     `yaml:"max_lives"`
	Storage             int     `yaml:"storage"`
	MaxStorage          int     `yaml:"max_storage"`
	InvulnerableSeconds float64 `yaml:"invulnerable_seconds"`
	CoinsPerLife        int     `yaml:"coins_per_life"`
}

// Game holds session options.
type Game struct {
	StartLevel string `yaml:"start_level"`
	LevelsDir  string `yaml:"levels_dir"`
	AssetsDir  string `yaml:"assets_dir"`
	Watch      bool   `yaml:"watch"`
	Debug      bool   `yaml:"debug"`
	Intro      string `yaml:"intro"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:  640,
			Height: 360,
			Scale:  2,
			Title:  "Quest for True Color",
		},
		Physics: Physics{
			Step:           1.0 / 60.0,
			MaxSteps:       5,
			SpikeThreshold: 0.25,
			Gravity:        9.8,
			MaxFallSpeed:   600,
		},
		Player: Player{
			Speed:               100,
			JumpSpeed:           250,
			Lives:               3,
			MaxLives:            5,
			Storage:             1,
			MaxStorage:          9,
			InvulnerableSeconds: 1,
			CoinsPerLife:        10,
		},
		Game: Game{
			StartLevel: "level_1",
			Intro:      "Developed by Anderson, with love and coffee <3",
		},
		Log: Log{Level: "info"},
	}
}

// Validate reports the first setting the runtime cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Physics.Step <= 0 {
		errs = append(errs, fmt.Errorf("physics step %v must be positive", c.Physics.Step))
	}
	if c.Physics.MaxSteps < 1 {
		errs = append(errs, fmt.Errorf("physics max_steps %d must be at least 1", c.Physics.MaxSteps))
	}
	if c.Physics.SpikeThreshold < c.Physics.Step {
		errs = append(errs, fmt.Errorf("physics spike_threshold %v is below the step", c.Physics.SpikeThreshold))
	}
	if c.Player.Lives < 1 || c.Player.Lives > c.Player.MaxLives {
		errs = append(errs, fmt.Errorf("player lives %d must be within 1..%d", c.Player.Lives, c.Player.MaxLives))
	}
	if c.Player.Storage < 1 || c.Player.Storage > c.Player.MaxStorage || c.Player.MaxStorage > 9 {
		errs = append(errs, fmt.Errorf("player storage %d/%d must be within 1..9", c.Player.Storage, c.Player.MaxStorage))
	}
	if c.Player.CoinsPerLife < 1 {
		errs = append(errs, fmt.Errorf("player coins_per_life %d must be positive", c.Player.CoinsPerLife))
	}
	if c.Game.StartLevel == "" {
		errs = append(errs, errors.New("game start_level is empty"))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// LogLevel returns the configured level, info when unparsable.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
