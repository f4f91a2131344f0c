// Package config provides YAML-based game tuning and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// GameConfig contains every tunable value of the game.
type GameConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Player  PlayerConfig  `yaml:"player"`
	Enemies EnemiesConfig `yaml:"enemies"`
	Corpse  CorpseConfig  `yaml:"corpse"`
	Door    DoorConfig    `yaml:"door"`
	Combat  CombatConfig  `yaml:"combat"`
	Guns    GunsConfig    `yaml:"guns"`
	Items   ItemsConfig   `yaml:"items"`
	Audio   AudioConfig   `yaml:"audio"`
	View    ViewConfig    `yaml:"view"`
}

// TimingConfig defines the frame clock.
type TimingConfig struct {
	TickRate int     `yaml:"tick_rate"` // frames per second
	MaxDT    float64 `yaml:"max_dt"`    // longest frame step in seconds
}

// PlayerConfig defines the player creature.
type PlayerConfig struct {
	Width          float64  `yaml:"width"`
	Height         float64  `yaml:"height"`
	Health         float64  `yaml:"health"`
	Speed          float64  `yaml:"speed"`  // units per second
	Stride         float64  `yaml:"stride"` // distance added to the walk target per key press
	Flinch         float64  `yaml:"flinch"` // stun seconds per point of damage
	InventorySlots int      `yaml:"inventory_slots"`
	StartItems     []string `yaml:"start_items"`
}

// EnemyConfig defines one enemy kind.
type EnemyConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Health      float64 `yaml:"health"`
	Speed       float64 `yaml:"speed"` // units per second
	Damage      float64 `yaml:"damage"`
	AttackTime  float64 `yaml:"attack_time"`
	AttackRange float64 `yaml:"attack_range"`
	Attacks     bool    `yaml:"attacks"`
	Regen       float64 `yaml:"regen"` // health per second
	Respawns    bool    `yaml:"respawns"`
	Flinch      float64 `yaml:"flinch"`
}

// EnemiesConfig holds the per-kind enemy tuning.
type EnemiesConfig struct {
	Basic   EnemyConfig `yaml:"basic_enemy"`
	Large   EnemyConfig `yaml:"large_enemy"`
	Recover EnemyConfig `yaml:"recover_enemy"`
}

// Kind returns the tuning for an enemy kind name.
func (e EnemiesConfig) Kind(name string) (EnemyConfig, bool) {
	switch name {
	case "basic_enemy":
		return e.Basic, true
	case "large_enemy":
		return e.Large, true
	case "recover_enemy":
		return e.Recover, true
	default:
		return EnemyConfig{}, false
	}
}

// CorpseConfig defines corpses and respawning.
type CorpseConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	RecoverDelay float64 `yaml:"recover_delay"`
	FrameTime    float64 `yaml:"frame_time"`
	Frames       int     `yaml:"frames"`
}

// DoorConfig defines doors and level transitions.
type DoorConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	FadeTime       float64 `yaml:"fade_time"`
	InteractMargin float64 `yaml:"interact_margin"`
	GridUnit       float64 `yaml:"grid_unit"` // world map cell size used to align vertical exits
}

// CombatConfig defines shared combat timing.
type CombatConfig struct {
	StepInterval float64 `yaml:"step_interval"` // minimum seconds between footstep sounds
	TextTime     float64 `yaml:"text_time"`     // lifetime of floating text
}

// GunConfig defines one gun.
type GunConfig struct {
	Damage      float64 `yaml:"damage"`
	Cooldown    float64 `yaml:"cooldown"`
	Range       float64 `yaml:"range"`
	Projectiles int     `yaml:"projectiles"`
	Spread      float64 `yaml:"spread"`
	Ammo        float64 `yaml:"ammo"`
	Recharge    float64 `yaml:"recharge"` // ammunition per second while selected
	Stun        float64 `yaml:"stun"`
}

// GunsConfig holds the per-gun tuning.
type GunsConfig struct {
	Handgun  GunConfig `yaml:"handgun"`
	Shotgun  GunConfig `yaml:"shotgun"`
	Stungun  GunConfig `yaml:"stungun"`
	Revolver GunConfig `yaml:"revolver"`
}

// Gun returns the tuning for a gun name.
func (g GunsConfig) Gun(name string) (GunConfig, bool) {
	switch name {
	case "handgun":
		return g.Handgun, true
	case "shotgun":
		return g.Shotgun, true
	case "stungun":
		return g.Stungun, true
	case "revolver":
		return g.Revolver, true
	default:
		return GunConfig{}, false
	}
}

// AmmoConfig defines an ammunition pack.
type AmmoConfig struct {
	Gun    string  `yaml:"gun"`
	Amount float64 `yaml:"amount"`
}

// ItemsConfig defines consumables and ammunition packs.
type ItemsConfig struct {
	MedkitHeal   float64    `yaml:"medkit_heal"`
	HandgunAmmo  AmmoConfig `yaml:"handgun_ammo"`
	ShotgunAmmo  AmmoConfig `yaml:"shotgun_ammo"`
	RevolverAmmo AmmoConfig `yaml:"revolver_ammo"`
}

// AudioConfig defines the sound sink.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Volume       float64 `yaml:"volume"` // gain in [0, 1]
	HearingRange float64 `yaml:"hearing_range"`
}

// ViewConfig maps world units onto terminal cells.
type ViewConfig struct {
	UnitsPerCol float64 `yaml:"units_per_col"`
	UnitsPerRow float64 `yaml:"units_per_row"`
}

// Validate reports the first out-of-range value.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Timing.TickRate > 0, "timing.tick_rate must be positive, got %d", c.Timing.TickRate)
	check(c.Timing.MaxDT > 0, "timing.max_dt must be positive, got %v", c.Timing.MaxDT)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Player.Health > 0, "player.health must be positive, got %v", c.Player.Health)
	check(c.Player.InventorySlots > 0, "player.inventory_slots must be positive, got %d", c.Player.InventorySlots)
	for name, e := range map[string]EnemyConfig{
		"basic_enemy": c.Enemies.Basic, "large_enemy": c.Enemies.Large, "recover_enemy": c.Enemies.Recover,
	} {
		check(e.Width > 0 && e.Height > 0, "enemies.%s size must be positive", name)
		check(e.Health > 0, "enemies.%s.health must be positive, got %v", name, e.Health)
	}
	for name, g := range map[string]GunConfig{
		"handgun": c.Guns.Handgun, "shotgun": c.Guns.Shotgun, "stungun": c.Guns.Stungun, "revolver": c.Guns.Revolver,
	} {
		check(g.Projectiles > 0, "guns.%s.projectiles must be positive, got %d", name, g.Projectiles)
		check(g.Range > 0, "guns.%s.range must be positive, got %v", name, g.Range)
	}
	check(c.Door.Width > 0 && c.Door.Height > 0, "door size must be positive")
	check(c.View.UnitsPerCol > 0 && c.View.UnitsPerRow > 0, "view scale must be positive")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
