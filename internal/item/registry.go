package item

import (
	"github.com/osse101/roomcrawl/internal/dice"
	"github.com/osse101/roomcrawl/internal/domain"
)

// Registry issues item ids that are unique within one game session.
// Ids are random draws, redrawn until they miss every id issued so far.
// After MaxIDRedraws misses the next free id above the last draw is taken,
// so a roller that keeps repeating itself cannot stall issuance.
type Registry struct {
	rng    dice.Roller
	issued map[domain.ItemID]struct{}
}

// NewRegistry creates an empty registry drawing from rng
func NewRegistry(rng dice.Roller) *Registry {
	return &Registry{
		rng:    rng,
		issued: make(map[domain.ItemID]struct{}),
	}
}

// Issue draws a fresh id
func (r *Registry) Issue() (domain.ItemID, error) {
	const span = MaxItemID - MinItemID + 1
	if len(r.issued) >= span {
		return 0, domain.ErrIDSpaceExhausted
	}

	var id domain.ItemID
	for attempt := 0; attempt < MaxIDRedraws; attempt++ {
		id = domain.ItemID(MinItemID + r.rng.Intn(span))
		if !r.Issued(id) {
			return r.take(id), nil
		}
	}

	// the space is not full, so scanning upward finds a free id within one lap
	for i := 1; i < span; i++ {
		next := domain.ItemID(MinItemID + (int(id)-MinItemID+i)%span)
		if !r.Issued(next) {
			return r.take(next), nil
		}
	}
	return 0, domain.ErrIDSpaceExhausted
}

func (r *Registry) take(id domain.ItemID) domain.ItemID {
	r.issued[id] = struct{}{}
	return id
}

// Issued reports whether id was handed out by this registry
func (r *Registry) Issued(id domain.ItemID) bool {
	_, ok := r.issued[id]
	return ok
}

// Count returns how many ids have been issued
func (r *Registry) Count() int {
	return len(r.issued)
}

func (r *Registry) newItem(name string, kind domain.ItemKind) (*domain.Item, error) {
	id, err := r.Issue()
	if err != nil {
		return nil, err
	}
	return &domain.Item{ID: id, Name: name, Kind: kind}, nil
}

// NewWeapon creates an unowned weapon
func (r *Registry) NewWeapon(name string, damageBonus, damageSpread float64) (*domain.Item, error) {
	it, err := r.newItem(name, domain.KindWeapon)
	if err != nil {
		return nil, err
	}
	it.Weapon = &domain.WeaponStats{DamageBonus: damageBonus, DamageSpread: damageSpread}
	return it, nil
}

// NewHelmet creates an unowned helmet
func (r *Registry) NewHelmet(name string) (*domain.Item, error) {
	return r.newItem(name, domain.KindHelmet)
}

// NewArmor creates an unowned armor piece
func (r *Registry) NewArmor(name string) (*domain.Item, error) {
	return r.newItem(name, domain.KindArmor)
}

// NewBoots creates unowned boots
func (r *Registry) NewBoots(name string) (*domain.Item, error) {
	return r.newItem(name, domain.KindBoots)
}

// NewHealingItem creates an unowned single-use healing item
func (r *Registry) NewHealingItem(name string, healAmount float64) (*domain.Item, error) {
	it, err := r.newItem(name, domain.KindHealing)
	if err != nil {
		return nil, err
	}
	it.Healing = &domain.HealingStats{HealAmount: healAmount}
	return it, nil
}
