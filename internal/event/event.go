package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/roomcrawl/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Game event types
const (
	FightCompleted Type = domain.EventTypeFightCompleted
	EnemyDefeated  Type = domain.EventTypeEnemyDefeated
	HeroDefeated   Type = domain.EventTypeHeroDefeated
	ItemEquipped   Type = domain.EventTypeItemEquipped
	ItemUnequipped Type = domain.EventTypeItemUnequipped
	ItemUsed       Type = domain.EventTypeItemUsed
	RoomEntered    Type = domain.EventTypeRoomEntered
)

// AllTypes lists every game event type, for subscribers that want all of them
var AllTypes = []Type{
	FightCompleted,
	EnemyDefeated,
	HeroDefeated,
	ItemEquipped,
	ItemUnequipped,
	ItemUsed,
	RoomEntered,
}

// Typed event payloads for type safety

// FightCompletedPayloadV1 is the typed payload for fight events
type FightCompletedPayloadV1 struct {
	SessionID   string           `json:"session_id"`
	RoomID      domain.RoomID    `json:"room_id"`
	Enemy       string           `json:"enemy"`
	EnemyKind   domain.EnemyKind `json:"enemy_kind"`
	HeroWon     bool             `json:"hero_won"`
	Exchanges   int              `json:"exchanges"`
	Attacks     int              `json:"attacks"`
	HeroHealth  float64          `json:"hero_health"`
	DamageDealt float64          `json:"damage_dealt"`
	DamageTaken float64          `json:"damage_taken"`
}

// EnemyDefeatedPayloadV1 is the typed payload for enemy defeat events
type EnemyDefeatedPayloadV1 struct {
	SessionID   string           `json:"session_id"`
	RoomID      domain.RoomID    `json:"room_id"`
	Enemy       string           `json:"enemy"`
	EnemyKind   domain.EnemyKind `json:"enemy_kind"`
	DyingPhrase string           `json:"dying_phrase"`
}

// HeroDefeatedPayloadV1 is the typed payload for the end of a session
type HeroDefeatedPayloadV1 struct {
	SessionID string           `json:"session_id"`
	RoomID    domain.RoomID    `json:"room_id"`
	KilledBy  domain.EnemyKind `json:"killed_by"`
	Rooms     int              `json:"rooms"`
}

// ItemPayloadV1 is the typed payload for equip, unequip and use events
type ItemPayloadV1 struct {
	SessionID string          `json:"session_id"`
	ItemID    domain.ItemID   `json:"item_id"`
	ItemName  string          `json:"item_name"`
	ItemKind  domain.ItemKind `json:"item_kind"`
	Slot      domain.Slot     `json:"slot,omitempty"`
	Healed    float64         `json:"healed,omitempty"`
}

// RoomEnteredPayloadV1 is the typed payload for room change events
type RoomEnteredPayloadV1 struct {
	SessionID string           `json:"session_id"`
	From      domain.RoomID    `json:"from"`
	To        domain.RoomID    `json:"to"`
	Direction domain.Direction `json:"direction"`
	Enemies   int              `json:"enemies"`
	Generated bool             `json:"generated"`
}

// Type-safe event constructors

func newEvent(t Type, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// NewFightCompletedEvent creates a new fight completed event
func NewFightCompletedEvent(p FightCompletedPayloadV1) Event {
	return newEvent(FightCompleted, p)
}

// NewEnemyDefeatedEvent creates a new enemy defeated event
func NewEnemyDefeatedEvent(sessionID string, room domain.RoomID, e *domain.Enemy, phrase string) Event {
	return newEvent(EnemyDefeated, EnemyDefeatedPayloadV1{
		SessionID:   sessionID,
		RoomID:      room,
		Enemy:       e.Name,
		EnemyKind:   e.Kind,
		DyingPhrase: phrase,
	})
}

// NewHeroDefeatedEvent creates a new hero defeated event
func NewHeroDefeatedEvent(sessionID string, room domain.RoomID, killedBy domain.EnemyKind, rooms int) Event {
	return newEvent(HeroDefeated, HeroDefeatedPayloadV1{
		SessionID: sessionID,
		RoomID:    room,
		KilledBy:  killedBy,
		Rooms:     rooms,
	})
}

// NewItemEvent creates an equip, unequip or use event for it
func NewItemEvent(t Type, sessionID string, it *domain.Item, healed float64) Event {
	p := ItemPayloadV1{
		SessionID: sessionID,
		ItemID:    it.ID,
		ItemName:  it.Name,
		ItemKind:  it.Kind,
		Healed:    healed,
	}
	if slot, ok := it.Kind.Slot(); ok {
		p.Slot = slot
	}
	return newEvent(t, p)
}

// NewRoomEnteredEvent creates a new room entered event
func NewRoomEnteredEvent(sessionID string, from domain.RoomID, to *domain.Room, dir domain.Direction, generated bool) Event {
	return newEvent(RoomEntered, RoomEnteredPayloadV1{
		SessionID: sessionID,
		From:      from,
		To:        to.ID,
		Direction: dir,
		Enemies:   len(to.Enemies),
		Generated: generated,
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously, in subscription order.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Nop is a Bus that drops every event
type Nop struct{}

// Publish implements Bus
func (Nop) Publish(context.Context, Event) error { return nil }

// Subscribe implements Bus
func (Nop) Subscribe(Type, Handler) {}
