package unit

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/roomcrawl/internal/dice"
	"github.com/osse101/roomcrawl/internal/domain"
)

func TestSpawn(t *testing.T) {
	tests := []struct {
		kind    domain.EnemyKind
		name    string
		health  float64
		damage  float64
		defense float64
	}{
		{domain.EnemySkeleton, "Skeleton", 20, 2, 0},
		{domain.EnemyGhost, "Ghost", 10, 4, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			e, err := Spawn(tt.kind, 3)
			require.NoError(t, err)

			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, tt.name, e.Name)
			assert.Equal(t, tt.health, e.Health)
			assert.Equal(t, tt.health, e.MaxHealth)
			assert.Equal(t, tt.damage, e.Damage)
			assert.Equal(t, tt.defense, e.Defense)
			assert.Equal(t, domain.DefaultDamageSpread, e.DamageSpread)
			assert.Equal(t, domain.RoomID(3), e.Room)
			assert.NotEqual(t, uuid.Nil, e.ID)
		})
	}
}

func TestSpawn_UnknownKind(t *testing.T) {
	_, err := Spawn("dragon", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownEnemyKind)
}

func TestRegistry_IsACopy(t *testing.T) {
	r := Registry()
	require.Len(t, r, 2)
	r[0].Health = 999

	tmpl, err := Template(domain.EnemySkeleton)
	require.NoError(t, err)
	assert.Equal(t, 20.0, tmpl.Health)
}

func TestRandomKind(t *testing.T) {
	assert.Equal(t, domain.EnemySkeleton, RandomKind(&dice.Fixed{Ints: []int{0}}))
	assert.Equal(t, domain.EnemyGhost, RandomKind(&dice.Fixed{Ints: []int{1}}))

	seen := map[domain.EnemyKind]int{}
	rng := dice.New(99)
	for i := 0; i < 200; i++ {
		seen[RandomKind(rng)]++
	}
	assert.Len(t, seen, 2, "every registered kind is reachable")
}

func TestDyingPhrase(t *testing.T) {
	e, err := Spawn(domain.EnemyGhost, 1)
	require.NoError(t, err)

	assert.Equal(t, "flies away screaming", DyingPhrase(e, &dice.Fixed{Ints: []int{1}}))

	tmpl, _ := Template(domain.EnemyGhost)
	rng := dice.New(4)
	for i := 0; i < 20; i++ {
		assert.Contains(t, tmpl.DyingPhrases, DyingPhrase(e, rng))
	}
}

func TestNewHero(t *testing.T) {
	h := NewHero("Ada", 100, 5, 0.4)

	assert.Equal(t, "Ada", h.Name)
	assert.Equal(t, 100.0, h.Health)
	assert.Equal(t, 100.0, h.MaxHealth)
	assert.Equal(t, 5.0, h.Damage)
	assert.Equal(t, 0.4, h.Defense)
	assert.Empty(t, h.Inventory)
	assert.Equal(t, domain.NoRoom, h.Room)
}

func TestNewHero_InitialEquipment(t *testing.T) {
	sword := &domain.Item{ID: 1, Name: "Sword", Kind: domain.KindWeapon, Weapon: &domain.WeaponStats{DamageBonus: 5, DamageSpread: 0.25}}
	boots := &domain.Item{ID: 2, Name: "Boots", Kind: domain.KindBoots}

	h := NewHero("Ada", 100, 5, 0, WithWeapon(sword), WithBoots(boots), WithHelmet(nil))

	assert.Equal(t, 10.0, h.Damage, "weapon bonus applied at construction")
	assert.Equal(t, 0.25, h.DamageSpread)
	assert.Equal(t, 5.0, h.BaseDamage)
	assert.Same(t, sword, h.Equipped(domain.SlotWeapon))
	assert.Same(t, boots, h.Equipped(domain.SlotBoots))
	assert.Nil(t, h.Equipped(domain.SlotHelmet))
	assert.Equal(t, h.ID, sword.Owner)
	assert.Equal(t, h.ID, boots.Owner)
}

func TestNewHero_WithSpread(t *testing.T) {
	h := NewDefaultHero("Ada", WithSpread(0.3))
	assert.Equal(t, 0.3, h.DamageSpread)
	assert.Equal(t, domain.DefaultHeroHealth, h.Health)
}

func TestNewHero_IgnoresItemsForOtherSlots(t *testing.T) {
	potion := &domain.Item{ID: 1, Name: "Potion", Kind: domain.KindHealing, Healing: &domain.HealingStats{HealAmount: 10}}
	helmet := &domain.Item{ID: 2, Name: "Helmet", Kind: domain.KindHelmet}

	h := NewHero("Ada", 100, 5, 0, WithWeapon(potion), WithBoots(helmet))

	assert.Nil(t, h.Equipped(domain.SlotWeapon))
	assert.Nil(t, h.Equipped(domain.SlotBoots))
	assert.Equal(t, 5.0, h.Damage)
	assert.False(t, potion.Owned())
	assert.False(t, helmet.Owned())
}

func TestDisplayName_Concurrent(t *testing.T) {
	const goroutines = 16

	var wg sync.WaitGroup
	names := make([][]string, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				names[g] = append(names[g], DisplayName(domain.EnemySkeleton), DisplayName(domain.EnemyGhost))
			}
		}(g)
	}
	wg.Wait()

	for g := range names {
		for i := 0; i < len(names[g]); i += 2 {
			require.Equal(t, "Skeleton", names[g][i])
			require.Equal(t, "Ghost", names[g][i+1])
		}
	}
}
