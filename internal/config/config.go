// Package config provides YAML-based configuration for the pipeworks host:
// shuffle behavior, solve policy, level sources, and storage paths.
package config

import "github.com/pipelab/pipeworks/internal/puzzle"

// Config is the root configuration document.
type Config struct {
	Shuffle ShuffleConfig `yaml:"shuffle"`
	Solve   SolveConfig   `yaml:"solve"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
}

// ShuffleConfig controls how a freshly loaded level is scrambled.
type ShuffleConfig struct {
	// Enabled scrambles every tile's orientation before play. Disable it
	// to inspect levels as stored.
	Enabled bool `yaml:"enabled"`
	// Seed fixes the RNG seed; 0 means seed from the current time.
	Seed int64 `yaml:"seed"`
}

// SolveConfig controls what counts as solved.
type SolveConfig struct {
	// AllowEmpty accepts an all-empty grid as solved.
	AllowEmpty bool `yaml:"allow_empty"`
	// RequireConnected demands a single connected pipe network on top of
	// the local edge checks.
	RequireConnected bool `yaml:"require_connected"`
}

// Policy converts the solve section to the engine's policy type.
func (s SolveConfig) Policy() puzzle.SolvePolicy {
	return puzzle.SolvePolicy{
		AllowEmpty:       s.AllowEmpty,
		RequireConnected: s.RequireConnected,
	}
}

// LevelsConfig selects the level catalog source.
type LevelsConfig struct {
	// Dir loads levels from a directory instead of the bundled pack when
	// non-empty.
	Dir string `yaml:"dir"`
}

// StorageConfig locates the progress database.
type StorageConfig struct {
	DB string `yaml:"db"`
}
