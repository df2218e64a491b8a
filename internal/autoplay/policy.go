package autoplay

import (
	"context"

	"github.com/osse101/roomcrawl/internal/domain"
	"github.com/osse101/roomcrawl/internal/game"
)

// Policy is a simple greedy strategy for playing a session unattended
type Policy struct {
	// HealBelow is the health fraction under which a healing item is used
	HealBelow float64
	// MaxRooms stops the run once this many rooms have been reached
	MaxRooms int
}

// Report summarizes one played session
type Report struct {
	SessionID   string  `json:"session_id"`
	Seed        int64   `json:"seed"`
	Rooms       int     `json:"rooms"`
	Kills       int     `json:"kills"`
	Fights      int     `json:"fights"`
	Healed      float64 `json:"healed"`
	Defeated    bool    `json:"defeated"`
	FinalHealth float64 `json:"final_health"`
}

// DefaultPolicy returns the policy used when nothing is configured
func DefaultPolicy() Policy {
	return Policy{HealBelow: DefaultHealBelow, MaxRooms: DefaultMaxRooms}
}

// Play drives s until the hero dies or MaxRooms rooms have been reached
// and cleared. Before every step it heals when hurt and upgrades gear.
func (p Policy) Play(ctx context.Context, s *game.Session) (Report, error) {
	rep := Report{SessionID: s.ID(), Rooms: 1}

	for s.State() == game.StateExploring {
		if err := ctx.Err(); err != nil {
			return p.finish(rep, s), err
		}

		healed, err := p.heal(ctx, s)
		if err != nil {
			return p.finish(rep, s), err
		}
		rep.Healed += healed

		if err := p.gearUp(ctx, s); err != nil {
			return p.finish(rep, s), err
		}

		r := s.CurrentRoom()
		if r.Blocked() {
			out, err := s.Fight(ctx, r.Enemies[0].Name)
			if err != nil {
				return p.finish(rep, s), err
			}
			rep.Fights++
			if out.HeroWon {
				rep.Kills++
			}
			continue
		}

		if rep.Rooms >= p.MaxRooms {
			break
		}
		if _, err := s.Move(ctx, domain.DirectionNext); err != nil {
			return p.finish(rep, s), err
		}
		rep.Rooms++
	}

	return p.finish(rep, s), nil
}

func (p Policy) finish(rep Report, s *game.Session) Report {
	rep.Defeated = s.State() == game.StateDefeated
	rep.FinalHealth = s.Hero().Health
	return rep
}

// heal uses healing items while the hero is below the threshold
func (p Policy) heal(ctx context.Context, s *game.Session) (float64, error) {
	hero := s.Hero()
	total := 0.0
	for hero.MaxHealth > 0 && hero.Health/hero.MaxHealth < p.HealBelow {
		potion := bestPotion(hero)
		if potion == nil {
			break
		}
		healed, err := s.Use(ctx, potion.Name)
		if err != nil {
			return total, err
		}
		total += healed
	}
	return total, nil
}

// gearUp equips the strongest weapon carried and fills empty armor slots
func (p Policy) gearUp(ctx context.Context, s *game.Session) error {
	hero := s.Hero()
	if w := bestWeapon(hero); w != nil {
		if err := s.Equip(ctx, w.Name); err != nil {
			return err
		}
	}
	for _, it := range append([]*domain.Item(nil), hero.Inventory...) {
		slot, ok := it.Kind.Slot()
		if !ok || slot == domain.SlotWeapon || hero.Equipped(slot) != nil {
			continue
		}
		if err := s.Equip(ctx, it.Name); err != nil {
			return err
		}
	}
	return nil
}

// bestWeapon returns a carried weapon stronger than the equipped one
func bestWeapon(h *domain.Hero) *domain.Item {
	best := h.Equipped(domain.SlotWeapon)
	var pick *domain.Item
	for _, it := range h.Inventory {
		if it.Kind != domain.KindWeapon || it.Weapon == nil {
			continue
		}
		if best == nil || best.Weapon == nil || it.Weapon.DamageBonus > best.Weapon.DamageBonus {
			best, pick = it, it
		}
	}
	return pick
}

// bestPotion returns the smallest healing item that covers the missing
// health, or the largest one if none does
func bestPotion(h *domain.Hero) *domain.Item {
	missing := h.MaxHealth - h.Health
	var fit, largest *domain.Item
	for _, it := range h.Inventory {
		if it.Kind != domain.KindHealing || it.Healing == nil {
			continue
		}
		amount := it.Healing.HealAmount
		if largest == nil || amount > largest.Healing.HealAmount {
			largest = it
		}
		if amount >= missing && (fit == nil || amount < fit.Healing.HealAmount) {
			fit = it
		}
	}
	if fit != nil {
		return fit
	}
	return largest
}
