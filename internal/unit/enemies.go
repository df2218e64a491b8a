package unit

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/roomcrawl/internal/dice"
	"github.com/osse101/roomcrawl/internal/domain"
)

// EnemyTemplate holds the base stats and flavor text of one enemy kind
type EnemyTemplate struct {
	Kind         domain.EnemyKind
	Health       float64
	Damage       float64
	Defense      float64
	DyingPhrases []string
}

// registry is the explicit, ordered table of enemy kinds that rooms spawn from
var registry = []EnemyTemplate{
	{
		Kind:    domain.EnemySkeleton,
		Health:  20,
		Damage:  2,
		Defense: 0,
		DyingPhrases: []string{
			"crumbles to the floor",
			"shatters into bones",
			"crumbling into pieces",
			"crashes to the ground",
		},
	},
	{
		Kind:    domain.EnemyGhost,
		Health:  10,
		Damage:  4,
		Defense: 0,
		DyingPhrases: []string{
			"vanishes in the air",
			"flies away screaming",
			"breaks down into dust particles",
			"dies leaving an imprint on the wall",
		},
	},
}

// Registry returns a copy of the enemy table in spawn order
func Registry() []EnemyTemplate {
	out := make([]EnemyTemplate, len(registry))
	copy(out, registry)
	return out
}

// Template returns the table entry for kind
func Template(kind domain.EnemyKind) (EnemyTemplate, error) {
	for _, t := range registry {
		if t.Kind == kind {
			return t, nil
		}
	}
	return EnemyTemplate{}, fmt.Errorf("%w: %s", domain.ErrUnknownEnemyKind, kind)
}

// DisplayName is the name an enemy of kind is shown and matched by.
// A Caser keeps state between calls, so each call builds its own.
func DisplayName(kind domain.EnemyKind) string {
	return cases.Title(language.English).String(string(kind))
}

// RandomKind draws an enemy kind uniformly from the registry
func RandomKind(rng dice.Roller) domain.EnemyKind {
	return registry[rng.Intn(len(registry))].Kind
}

// Spawn creates an enemy of kind at full health, bound to room
func Spawn(kind domain.EnemyKind, room domain.RoomID) (*domain.Enemy, error) {
	t, err := Template(kind)
	if err != nil {
		return nil, err
	}
	e := &domain.Enemy{
		Unit: domain.NewUnit(DisplayName(kind), t.Health, t.Damage, t.Defense),
		Kind: kind,
	}
	e.Room = room
	return e, nil
}

// DyingPhrase picks one of the enemy's death lines
func DyingPhrase(e *domain.Enemy, rng dice.Roller) string {
	t, err := Template(e.Kind)
	if err != nil || len(t.DyingPhrases) == 0 {
		return "dies"
	}
	return t.DyingPhrases[rng.Intn(len(t.DyingPhrases))]
}
