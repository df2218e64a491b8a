package domain

import "github.com/google/uuid"

// DefaultDamageSpread is the base amplitude of damage variance (0.9-1.1)
const DefaultDamageSpread = 0.1

// Unit is the capability record shared by heroes and enemies.
// Damage and DamageSpread are derived from the base values and the equipped
// weapon; call Recalculate after changing equipment.
type Unit struct {
	ID           uuid.UUID
	Name         string
	Health       float64
	MaxHealth    float64
	BaseDamage   float64
	BaseSpread   float64
	Damage       float64
	DamageSpread float64
	Defense      float64
	Equipment    map[Slot]*Item
	Room         RoomID
}

// NewUnit creates a unit at full health with nothing equipped
func NewUnit(name string, health, damage, defense float64) Unit {
	u := Unit{
		ID:         uuid.New(),
		Name:       name,
		Health:     health,
		MaxHealth:  health,
		BaseDamage: damage,
		BaseSpread: DefaultDamageSpread,
		Defense:    defense,
		Equipment:  make(map[Slot]*Item, len(AllSlots)),
	}
	u.Recalculate()
	return u
}

// IsAlive reports whether the unit still has health left
func (u *Unit) IsAlive() bool {
	return u.Health > 0
}

// Equipped returns the item in the slot, or nil
func (u *Unit) Equipped(slot Slot) *Item {
	return u.Equipment[slot]
}

// Recalculate re-derives effective damage and spread from the base values.
// It never accumulates, so repeated equip/unequip cycles cannot drift.
func (u *Unit) Recalculate() {
	u.Damage = u.BaseDamage
	u.DamageSpread = u.BaseSpread
	if w := u.Equipment[SlotWeapon]; w != nil && w.Weapon != nil {
		u.Damage += w.Weapon.DamageBonus
		u.DamageSpread = w.Weapon.DamageSpread
	}
}

// Hero is the player-controlled unit
type Hero struct {
	Unit
	Inventory []*Item
}

// EnemyKind is the closed set of enemy variants
type EnemyKind string

const (
	EnemySkeleton EnemyKind = "skeleton"
	EnemyGhost    EnemyKind = "ghost"
)

// Enemy is a computer-controlled unit
type Enemy struct {
	Unit
	Kind EnemyKind
}
