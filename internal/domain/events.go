package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.used")
const (
	// EventTypeFightCompleted is published after every resolved fight
	EventTypeFightCompleted = "fight.completed"

	// EventTypeEnemyDefeated is published when an enemy is removed from its room
	EventTypeEnemyDefeated = "enemy.defeated"

	// EventTypeHeroDefeated is published when the session ends with the hero's death
	EventTypeHeroDefeated = "hero.defeated"

	// EventTypeItemEquipped is published when an item moves into a slot
	EventTypeItemEquipped = "item.equipped"

	// EventTypeItemUnequipped is published when an item moves back to the inventory
	EventTypeItemUnequipped = "item.unequipped"

	// EventTypeItemUsed is published when a consumable item is used
	EventTypeItemUsed = "item.used"

	// EventTypeRoomEntered is published whenever the hero changes rooms
	EventTypeRoomEntered = "room.entered"
)
