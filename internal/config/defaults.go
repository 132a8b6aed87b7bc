package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no config file is
// found anywhere in the search path.
func Default() Config {
	return Config{
		Shuffle: ShuffleConfig{
			Enabled: true,
			Seed:    0,
		},
		Solve: SolveConfig{
			AllowEmpty:       false,
			RequireConnected: false,
		},
		Levels: LevelsConfig{
			Dir: "",
		},
		Storage: StorageConfig{
			DB: "~/.pipeworks/progress.db",
		},
	}
}
