package config

import (
	_ "embed"
)

//go:embed defaults/snakey.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  40,
			Height: 30,
		},
		Game: GameConfig{
			InitialLength: 3,
			TickMs:        100,
			Wrap:          true,
			CountdownMs:   3000,
		},
		Shell: ShellConfig{
			FPS: 60,
		},
	}
}

// DefaultYAML returns the embedded default config file, suitable for
// printing so users can copy and customize it.
func DefaultYAML() []byte {
	return defaultYAML
}
