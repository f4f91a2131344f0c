package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

// scaling returns the enemy health and damage multipliers for a preset.
func scaling(preset DifficultyPreset) (health, damage float64) {
	switch preset {
	case DifficultyEasy:
		return 0.7, 0.5
	case DifficultyHard:
		return 1.5, 2
	default:
		return 1, 1
	}
}

// ApplyPreset scales enemy health and damage for a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	health, damage := scaling(preset)
	for _, e := range []*EnemyConfig{&cfg.Enemies.Basic, &cfg.Enemies.Large, &cfg.Enemies.Recover} {
		e.Health *= health
		e.Damage *= damage
	}

	// Easy runs also start with more breathing room.
	if preset == DifficultyEasy {
		cfg.Player.Health += 5
	}
}
