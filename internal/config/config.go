// Package config provides YAML-based configuration loading for the
// game shell. It supplies startup defaults only; runtime settings live
// in memory and are never written back.
package config

import "github.com/vs-123/snakey/internal/core"

// Config contains all startup configuration.
type Config struct {
	Grid  GridConfig  `yaml:"grid"`
	Game  GameConfig  `yaml:"game"`
	Shell ShellConfig `yaml:"shell"`
}

// GridConfig defines the playfield dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameConfig seeds the in-memory settings and the countdown.
type GameConfig struct {
	InitialLength int  `yaml:"initial_length"`  // 1-10
	TickMs        int  `yaml:"tick_ms"`         // 50-500
	Wrap          bool `yaml:"wrap"`
	CountdownMs   int  `yaml:"countdown_ms"`
}

// ShellConfig defines presentation-layer parameters.
type ShellConfig struct {
	FPS int `yaml:"fps"` // render frames per second
}

// Normalize clamps out-of-range values to sane bounds instead of
// rejecting them; a config file can never put the game into an invalid
// state.
func (c *Config) Normalize() {
	c.Grid.Width = core.Clamp(c.Grid.Width, 8, 200)
	c.Grid.Height = core.Clamp(c.Grid.Height, 8, 200)
	c.Game.InitialLength = core.Clamp(c.Game.InitialLength, 1, 10)
	c.Game.TickMs = core.Clamp(c.Game.TickMs, 50, 500)
	c.Game.CountdownMs = core.Clamp(c.Game.CountdownMs, 0, 10000)
	c.Shell.FPS = core.Clamp(c.Shell.FPS, 10, 120)
}
