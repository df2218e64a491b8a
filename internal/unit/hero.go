package unit

import (
	"github.com/osse101/roomcrawl/internal/domain"
)

// HeroOption customizes a hero at construction
type HeroOption func(h *domain.Hero)

// withEquipped fills slot with it. Items whose kind belongs in another
// slot, and consumables, are ignored.
func withEquipped(slot domain.Slot, it *domain.Item) HeroOption {
	return func(h *domain.Hero) {
		if it == nil {
			return
		}
		if s, ok := it.Kind.Slot(); !ok || s != slot {
			return
		}
		h.Equipment[slot] = it
	}
}

// WithWeapon starts the hero with a weapon equipped
func WithWeapon(it *domain.Item) HeroOption { return withEquipped(domain.SlotWeapon, it) }

// WithHelmet starts the hero with a helmet equipped
func WithHelmet(it *domain.Item) HeroOption { return withEquipped(domain.SlotHelmet, it) }

// WithArmor starts the hero with armor equipped
func WithArmor(it *domain.Item) HeroOption { return withEquipped(domain.SlotArmor, it) }

// WithBoots starts the hero with boots equipped
func WithBoots(it *domain.Item) HeroOption { return withEquipped(domain.SlotBoots, it) }

// WithSpread overrides the unarmed damage spread
func WithSpread(spread float64) HeroOption {
	return func(h *domain.Hero) {
		h.BaseSpread = spread
	}
}

// NewHero creates a hero at full health. Initially equipped items become
// owned by the hero and a weapon's bonus is applied immediately.
func NewHero(name string, health, damage, defense float64, opts ...HeroOption) *domain.Hero {
	h := &domain.Hero{
		Unit:      domain.NewUnit(name, health, damage, defense),
		Inventory: make([]*domain.Item, 0),
	}
	for _, opt := range opts {
		opt(h)
	}
	for _, it := range h.Equipment {
		it.Owner = h.ID
	}
	h.Recalculate()
	return h
}

// NewDefaultHero creates a hero with the default starting stats
func NewDefaultHero(name string, opts ...HeroOption) *domain.Hero {
	return NewHero(name, domain.DefaultHeroHealth, domain.DefaultHeroDamage, domain.DefaultHeroDefense, opts...)
}
