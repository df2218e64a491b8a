package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/roomcrawl/internal/dice"
	"github.com/osse101/roomcrawl/internal/domain"
	"github.com/osse101/roomcrawl/internal/item"
	"github.com/osse101/roomcrawl/internal/unit"
)

type fixture struct {
	hero *domain.Hero
	reg  *item.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		hero: unit.NewHero("Hero", 100, 5, 0),
		reg:  item.NewRegistry(dice.New(8)),
	}
}

func (f *fixture) weapon(t *testing.T, name string, bonus, spread float64) *domain.Item {
	t.Helper()
	it, err := f.reg.NewWeapon(name, bonus, spread)
	require.NoError(t, err)
	Add(f.hero, it)
	return it
}

func (f *fixture) potion(t *testing.T, name string, amount float64) *domain.Item {
	t.Helper()
	it, err := f.reg.NewHealingItem(name, amount)
	require.NoError(t, err)
	Add(f.hero, it)
	return it
}

// requireExclusive checks that no item is both carried and equipped
func requireExclusive(t *testing.T, h *domain.Hero) {
	t.Helper()
	for _, it := range h.Equipment {
		if it == nil {
			continue
		}
		for _, carried := range h.Inventory {
			require.NotSame(t, it, carried, "%s is both equipped and carried", it.Name)
		}
	}
}

func TestAdd(t *testing.T) {
	f := newFixture(t)
	sword := f.weapon(t, "Sword", 5, 0.2)

	assert.Equal(t, f.hero.ID, sword.Owner)
	assert.Same(t, sword, Find(f.hero, "Sword"))
	assert.Nil(t, Find(f.hero, "Axe"))
}

func TestEquip_Weapon(t *testing.T) {
	f := newFixture(t)
	sword := f.weapon(t, "Sword", 5, 0.2)

	require.NoError(t, Equip(f.hero, "Sword"))

	assert.Equal(t, 10.0, f.hero.Damage)
	assert.Equal(t, 0.2, f.hero.DamageSpread)
	assert.Same(t, sword, f.hero.Equipped(domain.SlotWeapon))
	assert.Empty(t, f.hero.Inventory)
	requireExclusive(t, f.hero)
}

func TestEquip_NotFound(t *testing.T) {
	f := newFixture(t)

	err := Equip(f.hero, "Sword")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Equal(t, 5.0, f.hero.Damage)
}

func TestEquip_Consumable(t *testing.T) {
	f := newFixture(t)
	f.potion(t, "Potion", 10)

	err := Equip(f.hero, "Potion")
	assert.ErrorIs(t, err, domain.ErrNotEquippable)
	assert.Len(t, f.hero.Inventory, 1)
}

func TestEquip_ReplacesOccupant(t *testing.T) {
	f := newFixture(t)
	sword := f.weapon(t, "Sword", 5, 0.2)
	axe := f.weapon(t, "Axe", 8, 0.4)

	require.NoError(t, Equip(f.hero, "Sword"))
	require.NoError(t, Equip(f.hero, "Axe"))

	assert.Same(t, axe, f.hero.Equipped(domain.SlotWeapon))
	assert.Equal(t, []*domain.Item{sword}, f.hero.Inventory)
	assert.Equal(t, 13.0, f.hero.Damage, "bonuses never stack")
	assert.Equal(t, 0.4, f.hero.DamageSpread)
	requireExclusive(t, f.hero)
}

func TestEquip_FirstMatchWins(t *testing.T) {
	f := newFixture(t)
	first := f.weapon(t, "Blade", 1, 0.1)
	f.weapon(t, "Blade", 9, 0.1)

	require.NoError(t, Equip(f.hero, "Blade"))

	assert.Same(t, first, f.hero.Equipped(domain.SlotWeapon))
	assert.Equal(t, 6.0, f.hero.Damage)
}

func TestEquip_ArmorSlotsAreStatNeutral(t *testing.T) {
	f := newFixture(t)
	helmet, err := f.reg.NewHelmet("Cap")
	require.NoError(t, err)
	Add(f.hero, helmet)
	boots, err := f.reg.NewBoots("Shoes")
	require.NoError(t, err)
	Add(f.hero, boots)

	require.NoError(t, Equip(f.hero, "Cap"))
	require.NoError(t, Equip(f.hero, "Shoes"))

	assert.Same(t, helmet, f.hero.Equipped(domain.SlotHelmet))
	assert.Same(t, boots, f.hero.Equipped(domain.SlotBoots))
	assert.Equal(t, 5.0, f.hero.Damage)
	assert.Equal(t, domain.DefaultDamageSpread, f.hero.DamageSpread)
	assert.Equal(t, 0.0, f.hero.Defense)
}

func TestUnequip(t *testing.T) {
	f := newFixture(t)
	sword := f.weapon(t, "Sword", 5, 0.2)
	require.NoError(t, Equip(f.hero, "Sword"))

	require.NoError(t, Unequip(f.hero, "Sword"))

	assert.Equal(t, 5.0, f.hero.Damage)
	assert.Equal(t, domain.DefaultDamageSpread, f.hero.DamageSpread)
	assert.Nil(t, f.hero.Equipped(domain.SlotWeapon))
	assert.Equal(t, []*domain.Item{sword}, f.hero.Inventory)
	assert.Equal(t, f.hero.ID, sword.Owner)
}

func TestUnequip_NotEquipped(t *testing.T) {
	f := newFixture(t)
	f.weapon(t, "Sword", 5, 0.2)

	err := Unequip(f.hero, "Sword")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Len(t, f.hero.Inventory, 1)
}

func TestEquipUnequip_RoundTripsWithoutDrift(t *testing.T) {
	f := newFixture(t)
	sword := f.weapon(t, "Sword", 0.7, 0.33)
	potion := f.potion(t, "Potion", 10)
	damage, spread := f.hero.Damage, f.hero.DamageSpread

	for i := 0; i < 1000; i++ {
		require.NoError(t, Equip(f.hero, "Sword"))
		require.NoError(t, Unequip(f.hero, "Sword"))
	}

	assert.Equal(t, damage, f.hero.Damage)
	assert.Equal(t, spread, f.hero.DamageSpread)
	assert.ElementsMatch(t, []*domain.Item{sword, potion}, f.hero.Inventory)
	assert.Nil(t, f.hero.Equipped(domain.SlotWeapon))
}

func TestUse_Heals(t *testing.T) {
	f := newFixture(t)
	potion := f.potion(t, "Potion", 15)
	f.hero.Health = 50

	healed, err := Use(f.hero, "Potion")
	require.NoError(t, err)

	assert.Equal(t, 15.0, healed)
	assert.Equal(t, 65.0, f.hero.Health)
	assert.Empty(t, f.hero.Inventory)
	assert.Equal(t, uuid.Nil, potion.Owner)
}

func TestUse_NeverOverheals(t *testing.T) {
	f := newFixture(t)
	f.potion(t, "Potion", 40)
	f.hero.Health = 90

	healed, err := Use(f.hero, "Potion")
	require.NoError(t, err)

	assert.Equal(t, 10.0, healed)
	assert.Equal(t, f.hero.MaxHealth, f.hero.Health)
}

func TestUse_AtFullHealthStillConsumes(t *testing.T) {
	f := newFixture(t)
	f.potion(t, "Potion", 40)

	healed, err := Use(f.hero, "Potion")
	require.NoError(t, err)

	assert.Equal(t, 0.0, healed)
	assert.Equal(t, 100.0, f.hero.Health)
	assert.Empty(t, f.hero.Inventory)
}

func TestUse_AboveMaxDoesNotDrain(t *testing.T) {
	f := newFixture(t)
	f.potion(t, "Potion", 40)
	f.hero.Health = 103

	healed, err := Use(f.hero, "Potion")
	require.NoError(t, err)

	assert.Equal(t, 0.0, healed)
	assert.Equal(t, 103.0, f.hero.Health)
}

func TestUse_Errors(t *testing.T) {
	f := newFixture(t)
	f.weapon(t, "Sword", 5, 0.2)

	_, err := Use(f.hero, "Potion")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = Use(f.hero, "Sword")
	assert.ErrorIs(t, err, domain.ErrNotConsumable)
	assert.Len(t, f.hero.Inventory, 1)
}

func TestUse_SkipsSameNamedEquipment(t *testing.T) {
	f := newFixture(t)
	f.weapon(t, "Mystery", 1, 0.1)
	potion := f.potion(t, "Mystery", 5)
	f.hero.Health = 10

	healed, err := Use(f.hero, "Mystery")
	require.NoError(t, err)

	assert.Equal(t, 5.0, healed)
	assert.NotContains(t, f.hero.Inventory, potion)
	assert.Len(t, f.hero.Inventory, 1)
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	f.potion(t, "Potion", 5)
	f.weapon(t, "Sword", 1, 0.1)
	f.potion(t, "Potion", 5)

	assert.Equal(t, []domain.Stack{
		{Name: "Potion", Kind: domain.KindHealing, Quantity: 2},
		{Name: "Sword", Kind: domain.KindWeapon, Quantity: 1},
	}, Summary(f.hero))
	assert.Empty(t, Summary(unit.NewHero("Empty", 1, 1, 0)))
}

func TestOwnershipInvariant_AcrossSequence(t *testing.T) {
	f := newFixture(t)
	all := []*domain.Item{
		f.weapon(t, "Sword", 5, 0.2),
		f.weapon(t, "Axe", 7, 0.3),
		f.potion(t, "Potion", 10),
	}
	consumed := map[*domain.Item]bool{}

	steps := []func() error{
		func() error { return Equip(f.hero, "Sword") },
		func() error { return Equip(f.hero, "Axe") },
		func() error { return Unequip(f.hero, "Sword") },
		func() error { return Equip(f.hero, "Sword") },
		func() error {
			_, err := Use(f.hero, "Potion")
			consumed[all[2]] = true
			return err
		},
		func() error { return Unequip(f.hero, "Sword") },
	}

	for i, step := range steps {
		err := step()
		if i == 2 {
			assert.ErrorIs(t, err, domain.ErrItemNotFound, "sword was swapped out by the axe")
		} else {
			require.NoError(t, err)
		}

		for _, it := range all {
			places := 0
			if consumed[it] {
				places++
			}
			for _, carried := range f.hero.Inventory {
				if carried == it {
					places++
				}
			}
			for _, eq := range f.hero.Equipment {
				if eq == it {
					places++
				}
			}
			assert.Equal(t, 1, places, "step %d: %s must be in exactly one place", i, it.Name)
		}
	}
}
