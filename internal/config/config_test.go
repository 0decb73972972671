package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Spawn.InitialChance != 0.02 {
		t.Errorf("InitialChance = %v, want 0.02", cfg.Spawn.InitialChance)
	}
	if cfg.Spawn.GrowthFactor != 1.2 {
		t.Errorf("GrowthFactor = %v, want 1.2", cfg.Spawn.GrowthFactor)
	}
	if cfg.Spawn.WaveInterval != 20*time.Second {
		t.Errorf("WaveInterval = %v, want 20s", cfg.Spawn.WaveInterval)
	}
	if cfg.Spawn.EnemyFireDelay != 3500*time.Millisecond {
		t.Errorf("EnemyFireDelay = %v, want 3.5s", cfg.Spawn.EnemyFireDelay)
	}
	if cfg.Player.Health != 10 {
		t.Errorf("Player.Health = %d, want 10", cfg.Player.Health)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
seed = 42

[spawn]
initial_chance = 0.05
wave_interval = "10s"

[logging]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Spawn.InitialChance != 0.05 {
		t.Errorf("InitialChance = %v, want 0.05", cfg.Spawn.InitialChance)
	}
	if cfg.Spawn.WaveInterval != 10*time.Second {
		t.Errorf("WaveInterval = %v, want 10s", cfg.Spawn.WaveInterval)
	}
	// Untouched keys keep their defaults.
	if cfg.Spawn.GrowthFactor != 1.2 {
		t.Errorf("GrowthFactor = %v, want default 1.2", cfg.Spawn.GrowthFactor)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad toml", "seed = [", "parse config"},
		{"zero world", "[world]\nwidth = 0\n", "world size"},
		{"shrinking waves", "[spawn]\ngrowth_factor = 0.5\n", "growth_factor"},
		{"no health", "[player]\nhealth = 0\n", "player.health"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() on missing file returned nil error")
	}
}
