package domain

// Hero defaults for character creation
const (
	DefaultHeroHealth  = 100.0
	DefaultHeroDamage  = 5.0
	DefaultHeroDefense = 0.0
)

// Room generation defaults
const (
	DefaultMaxEnemiesPerRoom = 2
)
