package inventory

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/roomcrawl/internal/domain"
)

// Add gives the hero an item. The hero becomes its owner.
func Add(h *domain.Hero, it *domain.Item) {
	it.Owner = h.ID
	h.Inventory = append(h.Inventory, it)
}

// Find returns the first carried item with the given name
func Find(h *domain.Hero, name string) *domain.Item {
	if i := indexOf(h, name); i >= 0 {
		return h.Inventory[i]
	}
	return nil
}

// FindEquipped returns the equipped item with the given name and its slot
func FindEquipped(h *domain.Hero, name string) (*domain.Item, domain.Slot, bool) {
	for _, slot := range domain.AllSlots {
		if it := h.Equipment[slot]; it != nil && it.Name == name {
			return it, slot, true
		}
	}
	return nil, "", false
}

// Equip moves the first carried item named name into its slot.
// An item already in that slot goes back to the inventory first.
func Equip(h *domain.Hero, name string) error {
	i := indexOf(h, name)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	it := h.Inventory[i]
	slot, ok := it.Kind.Slot()
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotEquippable, name)
	}

	if current := h.Equipment[slot]; current != nil {
		h.Equipment[slot] = nil
		h.Inventory = append(h.Inventory, current)
	}

	h.Inventory = removeAt(h.Inventory, i)
	h.Equipment[slot] = it
	h.Recalculate()
	return nil
}

// Unequip moves the equipped item named name back to the inventory and
// re-derives the hero's damage from its base values
func Unequip(h *domain.Hero, name string) error {
	it, slot, ok := FindEquipped(h, name)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}

	delete(h.Equipment, slot)
	h.Inventory = append(h.Inventory, it)
	h.Recalculate()
	return nil
}

// Use consumes the first carried consumable named name and returns the
// health it restored. Healing never exceeds max health; at full health the
// item is still used up.
func Use(h *domain.Hero, name string) (float64, error) {
	idx := -1
	found := false
	for i, it := range h.Inventory {
		if it.Name != name {
			continue
		}
		found = true
		if it.Kind.Consumable() {
			idx = i
			break
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	if idx < 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrNotConsumable, name)
	}

	it := h.Inventory[idx]
	healed := 0.0
	switch it.Kind {
	case domain.KindHealing:
		healed = heal(h, it.Healing)
	case domain.KindWeapon, domain.KindHelmet, domain.KindArmor, domain.KindBoots:
		return 0, fmt.Errorf("%w: %s", domain.ErrNotConsumable, name)
	}

	h.Inventory = removeAt(h.Inventory, idx)
	it.Owner = uuid.Nil
	return healed, nil
}

// Summary counts carried items by name, in first-seen order
func Summary(h *domain.Hero) []domain.Stack {
	stacks := make([]domain.Stack, 0, len(h.Inventory))
	index := make(map[string]int, len(h.Inventory))
	for _, it := range h.Inventory {
		if i, ok := index[it.Name]; ok {
			stacks[i].Quantity++
			continue
		}
		index[it.Name] = len(stacks)
		stacks = append(stacks, domain.Stack{Name: it.Name, Kind: it.Kind, Quantity: 1})
	}
	return stacks
}

func heal(h *domain.Hero, stats *domain.HealingStats) float64 {
	if stats == nil {
		return 0
	}
	amount := stats.HealAmount
	if missing := h.MaxHealth - h.Health; missing < amount {
		amount = missing
	}
	// Health can sit above max after a negative-damage hit; never drain it.
	if amount < 0 {
		amount = 0
	}
	h.Health += amount
	return amount
}

func indexOf(h *domain.Hero, name string) int {
	for i, it := range h.Inventory {
		if it.Name == name {
			return i
		}
	}
	return -1
}

func removeAt(items []*domain.Item, i int) []*domain.Item {
	out := make([]*domain.Item, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
