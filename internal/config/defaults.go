package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}

// DefaultGameConfig returns the built-in tuning. It mirrors defaults/game.yaml
// and is the base every loaded file is decoded over.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Timing: TimingConfig{
			TickRate: 30,
			MaxDT:    0.033,
		},
		Player: PlayerConfig{
			Width:          16,
			Height:         32,
			Health:         10,
			Speed:          42,
			Stride:         16,
			Flinch:         0,
			InventorySlots: 8,
			StartItems:     []string{"handgun", "shotgun", "stungun", "revolver"},
		},
		Enemies: EnemiesConfig{
			Basic: EnemyConfig{
				Width: 16, Height: 32, Health: 5, Speed: 20,
				Damage: 1, AttackTime: 0.85, AttackRange: 20, Attacks: true,
				Flinch: 0.8,
			},
			Large: EnemyConfig{
				Width: 32, Height: 60, Health: 50, Speed: 10,
				Damage: 1, AttackTime: 2, AttackRange: 20, Attacks: false,
				Regen: 1, Flinch: 0.8,
			},
			Recover: EnemyConfig{
				Width: 16, Height: 32, Health: 4, Speed: 24,
				Damage: 1, AttackTime: 1, AttackRange: 20, Attacks: true,
				Respawns: true, Flinch: 0.8,
			},
		},
		Corpse: CorpseConfig{
			Width:        32,
			Height:       32,
			RecoverDelay: 10,
			FrameTime:    0.25,
			Frames:       4,
		},
		Door: DoorConfig{
			Width:          16,
			Height:         32,
			FadeTime:       1,
			InteractMargin: 16,
			GridUnit:       64,
		},
		Combat: CombatConfig{
			StepInterval: 0.4,
			TextTime:     1,
		},
		Guns: GunsConfig{
			Handgun:  GunConfig{Damage: 1, Cooldown: 0.5, Range: 200, Projectiles: 1, Ammo: 50},
			Shotgun:  GunConfig{Damage: 0.5, Cooldown: 1, Range: 100, Projectiles: 5, Spread: 0.5, Ammo: 25},
			Stungun:  GunConfig{Damage: 0, Cooldown: 1.5, Range: 64, Projectiles: 1, Ammo: 3, Recharge: 0.4, Stun: 5},
			Revolver: GunConfig{Damage: 5, Cooldown: 1.5, Range: 300, Projectiles: 1, Ammo: 15},
		},
		Items: ItemsConfig{
			MedkitHeal:   3,
			HandgunAmmo:  AmmoConfig{Gun: "handgun", Amount: 10},
			ShotgunAmmo:  AmmoConfig{Gun: "shotgun", Amount: 5},
			RevolverAmmo: AmmoConfig{Gun: "revolver", Amount: 3},
		},
		Audio: AudioConfig{
			Enabled:      true,
			Volume:       0.3,
			HearingRange: 128,
		},
		View: ViewConfig{
			UnitsPerCol: 2,
			UnitsPerRow: 4,
		},
	}
}
