package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := "shuffle:\n  enabled: false\n  seed: 7\nsolve:\n  require_connected: true\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Shuffle.Enabled || cfg.Shuffle.Seed != 7 {
		t.Errorf("shuffle = %+v", cfg.Shuffle)
	}
	if !cfg.Solve.RequireConnected || cfg.Solve.AllowEmpty {
		t.Errorf("solve = %+v", cfg.Solve)
	}
	if !cfg.Solve.Policy().RequireConnected {
		t.Error("Policy() must carry require_connected")
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("an explicitly named missing config must be an error")
	}
}
