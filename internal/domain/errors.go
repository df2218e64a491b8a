package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound     = "item not found"
	ErrMsgNotEquippable    = "item is not equippable"
	ErrMsgNotConsumable    = "item is not consumable"
	ErrMsgUnknownItem      = "unknown item"
	ErrMsgIDSpaceExhausted = "item id space exhausted"

	// Room errors
	ErrMsgSlotBlocked = "room is blocked by enemies"
	ErrMsgNoSuchRoom  = "no such room"

	// Combat errors
	ErrMsgEnemyNotFound    = "enemy not found"
	ErrMsgNoEnemies        = "there are no enemies in the room"
	ErrMsgUnknownEnemyKind = "unknown enemy kind"

	// Session errors
	ErrMsgGameOver = "game is over"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrNotEquippable    = errors.New(ErrMsgNotEquippable)
	ErrNotConsumable    = errors.New(ErrMsgNotConsumable)
	ErrUnknownItem      = errors.New(ErrMsgUnknownItem)
	ErrIDSpaceExhausted = errors.New(ErrMsgIDSpaceExhausted)

	// Room errors
	ErrSlotBlocked = errors.New(ErrMsgSlotBlocked)
	ErrNoSuchRoom  = errors.New(ErrMsgNoSuchRoom)

	// Combat errors
	ErrEnemyNotFound    = errors.New(ErrMsgEnemyNotFound)
	ErrNoEnemies        = errors.New(ErrMsgNoEnemies)
	ErrUnknownEnemyKind = errors.New(ErrMsgUnknownEnemyKind)

	// Session errors
	ErrGameOver = errors.New(ErrMsgGameOver)
)
