package domain

import "github.com/google/uuid"

// ItemID is the registry-issued identifier of an item instance
type ItemID int

// ItemKind is the closed set of item variants
type ItemKind string

const (
	KindWeapon  ItemKind = "weapon"
	KindHelmet  ItemKind = "helmet"
	KindArmor   ItemKind = "armor"
	KindBoots   ItemKind = "boots"
	KindHealing ItemKind = "healing"
)

// Slot is an equipment slot. At most one item occupies a slot at a time.
type Slot string

const (
	SlotWeapon Slot = "weapon"
	SlotHelmet Slot = "helmet"
	SlotArmor  Slot = "armor"
	SlotBoots  Slot = "boots"
)

// AllSlots lists the slots in display order
var AllSlots = []Slot{SlotWeapon, SlotHelmet, SlotArmor, SlotBoots}

// Slot returns the equipment slot for the kind, or false for consumables
func (k ItemKind) Slot() (Slot, bool) {
	switch k {
	case KindWeapon:
		return SlotWeapon, true
	case KindHelmet:
		return SlotHelmet, true
	case KindArmor:
		return SlotArmor, true
	case KindBoots:
		return SlotBoots, true
	case KindHealing:
		return "", false
	}
	return "", false
}

// Consumable reports whether the kind is used up on use
func (k ItemKind) Consumable() bool {
	switch k {
	case KindHealing:
		return true
	case KindWeapon, KindHelmet, KindArmor, KindBoots:
		return false
	}
	return false
}

// Valid reports whether the kind is one of the known variants
func (k ItemKind) Valid() bool {
	switch k {
	case KindWeapon, KindHelmet, KindArmor, KindBoots, KindHealing:
		return true
	}
	return false
}

// WeaponStats is the payload carried by weapons
type WeaponStats struct {
	DamageBonus  float64 `json:"damage_bonus"`
	DamageSpread float64 `json:"damage_spread"`
}

// HealingStats is the payload carried by healing items
type HealingStats struct {
	HealAmount float64 `json:"heal_amount"`
}

// Item is a single item instance. ID and Name never change after creation.
// Owner is the ID of the unit holding the item, uuid.Nil while unowned.
type Item struct {
	ID      ItemID        `json:"item_id"`
	Name    string        `json:"item_name"`
	Kind    ItemKind      `json:"kind"`
	Owner   uuid.UUID     `json:"owner"`
	Weapon  *WeaponStats  `json:"weapon,omitempty"`
	Healing *HealingStats `json:"healing,omitempty"`
}

// Owned reports whether some unit holds the item
func (i *Item) Owned() bool {
	return i.Owner != uuid.Nil
}
