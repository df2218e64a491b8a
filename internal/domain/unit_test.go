package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUnit(t *testing.T) {
	u := NewUnit("Hero", 100, 5, 1)

	assert.Equal(t, 100.0, u.Health)
	assert.Equal(t, 100.0, u.MaxHealth)
	assert.Equal(t, 5.0, u.Damage)
	assert.Equal(t, DefaultDamageSpread, u.DamageSpread)
	assert.True(t, u.IsAlive())
	assert.NotNil(t, u.Equipment)
}

func TestUnit_IsAlive(t *testing.T) {
	u := NewUnit("Hero", 1, 1, 0)
	u.Health = 0
	assert.False(t, u.IsAlive(), "zero health is dead")
	u.Health = -3
	assert.False(t, u.IsAlive())
}

func TestUnit_Recalculate(t *testing.T) {
	u := NewUnit("Hero", 100, 5, 0)
	u.Equipment[SlotWeapon] = &Item{Kind: KindWeapon, Weapon: &WeaponStats{DamageBonus: 5, DamageSpread: 0.3}}

	for i := 0; i < 3; i++ {
		u.Recalculate()
	}
	assert.Equal(t, 10.0, u.Damage, "recalculation does not accumulate")
	assert.Equal(t, 0.3, u.DamageSpread)

	delete(u.Equipment, SlotWeapon)
	u.Recalculate()
	assert.Equal(t, 5.0, u.Damage)
	assert.Equal(t, DefaultDamageSpread, u.DamageSpread)
}

func TestItemKind_Slot(t *testing.T) {
	tests := []struct {
		kind     ItemKind
		slot     Slot
		equip    bool
		consumes bool
	}{
		{KindWeapon, SlotWeapon, true, false},
		{KindHelmet, SlotHelmet, true, false},
		{KindArmor, SlotArmor, true, false},
		{KindBoots, SlotBoots, true, false},
		{KindHealing, "", false, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			slot, ok := tt.kind.Slot()
			assert.Equal(t, tt.equip, ok)
			assert.Equal(t, tt.slot, slot)
			assert.Equal(t, tt.consumes, tt.kind.Consumable())
			assert.True(t, tt.kind.Valid())
		})
	}
	assert.False(t, ItemKind("scroll").Valid())
}

func TestRoom_Links(t *testing.T) {
	r := &Room{ID: 1}
	assert.False(t, r.Blocked())
	assert.False(t, r.HasPrev())
	assert.False(t, r.HasNext())

	r.Enemies = []*Enemy{{Kind: EnemyGhost}}
	r.Next = 2
	assert.True(t, r.Blocked())
	assert.True(t, r.HasNext())
}
