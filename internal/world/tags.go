package world

import "github.com/vovakirdan/bacon-invasion/internal/collision"

// Type tags. Every body carries a lineage built from these, most specific first.
const (
	TagEntity collision.Tag = iota
	TagStructure
	TagCreature
	TagPlayer
	TagEnemy
	TagBasicEnemy
	TagLargeEnemy
	TagRecoverEnemy
	TagCorpse
	TagDoor
	TagLockedDoor
	TagKeyDoor
	TagKeypadDoor
	TagPickup
	TagSign
	TagProjectile
)

var tagNames = map[collision.Tag]string{
	TagEntity:       "entity",
	TagStructure:    "structure",
	TagCreature:     "creature",
	TagPlayer:       "player",
	TagEnemy:        "enemy",
	TagBasicEnemy:   "basic_enemy",
	TagLargeEnemy:   "large_enemy",
	TagRecoverEnemy: "recover_enemy",
	TagCorpse:       "corpse",
	TagDoor:         "door",
	TagLockedDoor:   "locked_door",
	TagKeyDoor:      "key_door",
	TagKeypadDoor:   "keypad_door",
	TagPickup:       "pickup",
	TagSign:         "sign",
	TagProjectile:   "projectile",
}

// TagName returns the display name of a tag.
func TagName(t collision.Tag) string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return "unknown"
}

var (
	entityLineage    = collision.NewLineage(TagEntity)
	structureLineage = entityLineage.Extend(TagStructure)
	creatureLineage  = entityLineage.Extend(TagCreature)
	enemyLineage     = creatureLineage.Extend(TagEnemy)
	doorLineage      = structureLineage.Extend(TagDoor)
	lockedLineage    = doorLineage.Extend(TagLockedDoor)
)
