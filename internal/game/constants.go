package game

// CacheSchemaVersion is the current version of the cached session entry.
// Increment this when Session changes shape to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// Log messages
const (
	LogMsgSessionStarted = "Session started"
	LogMsgFightResolved  = "Fight resolved"
	LogMsgEnemyDefeated  = "Enemy defeated"
	LogMsgHeroDefeated   = "Hero defeated"
	LogMsgRoomEntered    = "Room entered"
	LogMsgItemEquipped   = "Item equipped"
	LogMsgItemUnequipped = "Item unequipped"
	LogMsgItemUsed       = "Item used"
	LogMsgItemGiven      = "Item given"
	LogMsgPublishFailed  = "Failed to publish game event"
)

// Log attribute keys
const (
	LogKeyEnemy       = "enemy"
	LogKeyEnemies     = "enemies"
	LogKeyRoomID      = "room_id"
	LogKeyItem        = "item"
	LogKeyHeroHealth  = "hero_health"
	LogKeyExchanges   = "exchanges"
	LogKeyDirection   = "direction"
	LogKeyHealed      = "healed"
	LogKeyEventType   = "event_type"
	LogKeyDyingPhrase = "dying_phrase"
)

// Error formats
const (
	ErrFmtStartSession = "start session: %w"
)
