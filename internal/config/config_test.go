package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded defaults drifted from DefaultGameConfig():\n%+v\n%+v", cfg, DefaultGameConfig())
	}
}

func TestLoadCustomPathMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte("player:\n  speed: 60\nenemies:\n  basic_enemy:\n    health: 9\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	def := DefaultGameConfig()
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"overridden speed", cfg.Player.Speed, 60},
		{"overridden enemy health", cfg.Enemies.Basic.Health, 9},
		{"kept enemy speed", cfg.Enemies.Basic.Speed, def.Enemies.Basic.Speed},
		{"kept player height", cfg.Player.Height, def.Player.Height},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %v, expected %v", tc.got, tc.expected)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(bad, []byte("player: [unclosed"), 0o644)
	os.WriteFile(invalid, []byte("timing:\n  tick_rate: 0\n"), 0o644)

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.yaml")},
		{"malformed yaml", bad},
		{"failed validation", invalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(tc.path); err == nil {
				t.Error("Load() error = nil, expected failure")
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset       string
		healthFactor float64
		damageFactor float64
	}{
		{"easy", 0.7, 0.5},
		{"normal", 1, 1},
		{"", 1, 1},
		{"hard", 1.5, 2},
	}

	for _, tc := range tests {
		t.Run(tc.preset, func(t *testing.T) {
			p, err := ParsePreset(tc.preset)
			if err != nil {
				t.Fatalf("ParsePreset(%q) failed: %v", tc.preset, err)
			}
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, p)
			def := DefaultGameConfig()
			if got := cfg.Enemies.Large.Health; got != def.Enemies.Large.Health*tc.healthFactor {
				t.Errorf("large health = %v, expected %v", got, def.Enemies.Large.Health*tc.healthFactor)
			}
			if got := cfg.Enemies.Basic.Damage; got != def.Enemies.Basic.Damage*tc.damageFactor {
				t.Errorf("basic damage = %v, expected %v", got, def.Enemies.Basic.Damage*tc.damageFactor)
			}
		})
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) error = nil, expected failure")
	}
}

func TestLookups(t *testing.T) {
	cfg := DefaultGameConfig()
	if e, ok := cfg.Enemies.Kind("large_enemy"); !ok || e.Width != 32 {
		t.Errorf("Kind(large_enemy) = %+v, %v", e, ok)
	}
	if _, ok := cfg.Enemies.Kind("dragon"); ok {
		t.Error("Kind(dragon) found")
	}
	if g, ok := cfg.Guns.Gun("shotgun"); !ok || g.Projectiles != 5 {
		t.Errorf("Gun(shotgun) = %+v, %v", g, ok)
	}
}
