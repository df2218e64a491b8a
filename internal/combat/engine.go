package combat

import (
	"github.com/google/uuid"

	"github.com/osse101/roomcrawl/internal/dice"
	"github.com/osse101/roomcrawl/internal/domain"
)

// Engine resolves attacks and fights. It is pure logic: no logging, no
// sleeping, every random draw comes from the injected roller.
type Engine struct {
	rng dice.Roller
}

// AttackRecord is one attack as it happened
type AttackRecord struct {
	Exchange       int       `json:"exchange"`
	AttackerID     uuid.UUID `json:"attacker_id"`
	DefenderID     uuid.UUID `json:"defender_id"`
	Attacker       string    `json:"attacker"`
	Defender       string    `json:"defender"`
	Damage         float64   `json:"damage"`
	DefenderHealth float64   `json:"defender_health"`
}

// Result captures a resolved fight
type Result struct {
	Winner  *domain.Unit   `json:"-"`
	Loser   *domain.Unit   `json:"-"`
	Attacks []AttackRecord `json:"attacks"`
	// Exchanges counts started rounds; the last one may be a single attack.
	Exchanges int `json:"exchanges"`
}

// NewEngine creates an engine drawing from rng
func NewEngine(rng dice.Roller) *Engine {
	return &Engine{rng: rng}
}

// Roll returns the damage attacker would deal to defender for draw u in [0, 1).
// Net damage is base*(1 - spread + 2*u*spread) - defense and is not clamped:
// defense above the rolled damage heals the defender.
func Roll(attacker, defender *domain.Unit, u float64) float64 {
	base := attacker.Damage
	spread := attacker.DamageSpread
	return base*(1-spread+2*u*spread) - defender.Defense
}

// DamageRange returns the inclusive lower and exclusive upper bound of Roll
func DamageRange(attacker, defender *domain.Unit) (low, high float64) {
	return Roll(attacker, defender, 0), Roll(attacker, defender, 1)
}

// Attack applies one attack and returns the damage dealt
func (e *Engine) Attack(attacker, defender *domain.Unit) float64 {
	dmg := Roll(attacker, defender, e.rng.Float64())
	defender.Health -= dmg
	return dmg
}

// Fight alternates attacks, a first, until one side dies.
// There is no turn limit: two units that cannot hurt each other loop forever.
func (e *Engine) Fight(a, b *domain.Unit) (winner, loser *domain.Unit) {
	res := e.run(a, b, false)
	return res.Winner, res.Loser
}

// FightJournal is Fight with every attack recorded for replay
func (e *Engine) FightJournal(a, b *domain.Unit) *Result {
	return e.run(a, b, true)
}

func (e *Engine) run(a, b *domain.Unit, record bool) *Result {
	res := &Result{}
	if record {
		res.Attacks = make([]AttackRecord, 0, 8)
	}

	for a.IsAlive() && b.IsAlive() {
		res.Exchanges++
		if e.strike(res, a, b, record) {
			break
		}
		if e.strike(res, b, a, record) {
			break
		}
	}

	if a.IsAlive() {
		res.Winner, res.Loser = a, b
	} else {
		res.Winner, res.Loser = b, a
	}
	return res
}

// strike performs one attack and reports whether the defender died
func (e *Engine) strike(res *Result, attacker, defender *domain.Unit, record bool) bool {
	dmg := e.Attack(attacker, defender)
	if record {
		res.Attacks = append(res.Attacks, AttackRecord{
			Exchange:       res.Exchanges,
			AttackerID:     attacker.ID,
			DefenderID:     defender.ID,
			Attacker:       attacker.Name,
			Defender:       defender.Name,
			Damage:         dmg,
			DefenderHealth: defender.Health,
		})
	}
	return !defender.IsAlive()
}
