package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/roomcrawl/internal/combat"
	"github.com/osse101/roomcrawl/internal/dice"
	"github.com/osse101/roomcrawl/internal/domain"
	"github.com/osse101/roomcrawl/internal/event"
	"github.com/osse101/roomcrawl/internal/inventory"
	"github.com/osse101/roomcrawl/internal/logger"
	"github.com/osse101/roomcrawl/internal/room"
	"github.com/osse101/roomcrawl/internal/unit"
)

// State is the lifecycle state of a session
type State string

const (
	StateExploring State = "exploring"
	StateDefeated  State = "defeated"
)

// FightOutcome describes one resolved fight from the hero's side
type FightOutcome struct {
	Enemy        *domain.Enemy
	HeroWon      bool
	HeroDefeated bool
	DyingPhrase  string
	Attacks      []combat.AttackRecord
	Exchanges    int
	DamageDealt  float64
	DamageTaken  float64
}

// Option configures a Session
type Option func(*Session)

// WithRoller sets the random source for combat, generation and flavour text
func WithRoller(r dice.Roller) Option {
	return func(s *Session) { s.rng = r }
}

// WithBus sets the event bus game events are published on
func WithBus(b event.Bus) Option {
	return func(s *Session) { s.bus = b }
}

// WithGraph supplies a pre-built room graph
func WithGraph(g *room.Graph) Option {
	return func(s *Session) { s.graph = g }
}

// Session is one hero's run through the room path. It ties combat,
// inventory and room traversal together and reports every change on the
// event bus. A Session is not safe for concurrent use.
type Session struct {
	id      uuid.UUID
	hero    *domain.Hero
	rng     dice.Roller
	bus     event.Bus
	graph   *room.Graph
	engine  *combat.Engine
	current *domain.Room
	state   State
	kills   int
}

// NewSession starts a run for hero in the first room of the graph
func NewSession(ctx context.Context, hero *domain.Hero, opts ...Option) (*Session, error) {
	s := &Session{
		id:    uuid.New(),
		hero:  hero,
		bus:   event.Nop{},
		state: StateExploring,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = dice.New(0)
	}
	if s.graph == nil {
		s.graph = room.NewGraph(s.rng)
	}
	s.engine = combat.NewEngine(s.rng)

	start, err := s.graph.Start()
	if err != nil {
		return nil, fmt.Errorf(ErrFmtStartSession, err)
	}
	s.enter(start)

	logger.FromContext(s.Context(ctx)).Info(LogMsgSessionStarted,
		LogKeyRoomID, start.ID,
		LogKeyEnemies, len(start.Enemies))
	return s, nil
}

// ID returns the session id
func (s *Session) ID() string { return s.id.String() }

// Hero returns the session's hero
func (s *Session) Hero() *domain.Hero { return s.hero }

// State returns the lifecycle state
func (s *Session) State() State { return s.state }

// CurrentRoom returns the room the hero stands in
func (s *Session) CurrentRoom() *domain.Room { return s.current }

// Graph returns the room graph
func (s *Session) Graph() *room.Graph { return s.graph }

// Kills counts enemies defeated in this session
func (s *Session) Kills() int { return s.kills }

// Context returns ctx tagged with the session id for logging
func (s *Session) Context(ctx context.Context) context.Context {
	return logger.WithSessionID(ctx, s.ID())
}

// Fight makes the hero fight the first enemy in the room named enemyName.
// The hero strikes first. A defeated enemy leaves the room; a defeated hero
// ends the session.
func (s *Session) Fight(ctx context.Context, enemyName string) (*FightOutcome, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	ctx = s.Context(ctx)
	log := logger.FromContext(ctx)

	r := s.current
	if len(r.Enemies) == 0 {
		return nil, domain.ErrNoEnemies
	}
	enemy := findEnemy(r, enemyName)
	if enemy == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrEnemyNotFound, enemyName)
	}

	heroBefore, enemyBefore := s.hero.Health, enemy.Health
	res := s.engine.FightJournal(&s.hero.Unit, &enemy.Unit)

	out := &FightOutcome{
		Enemy:       enemy,
		HeroWon:     s.hero.IsAlive(),
		Attacks:     res.Attacks,
		Exchanges:   res.Exchanges,
		DamageDealt: enemyBefore - enemy.Health,
		DamageTaken: heroBefore - s.hero.Health,
	}
	log.Debug(LogMsgFightResolved,
		LogKeyEnemy, enemy.Name,
		LogKeyExchanges, res.Exchanges,
		LogKeyHeroHealth, s.hero.Health)

	s.publish(ctx, event.NewFightCompletedEvent(event.FightCompletedPayloadV1{
		SessionID:   s.ID(),
		RoomID:      r.ID,
		Enemy:       enemy.Name,
		EnemyKind:   enemy.Kind,
		HeroWon:     out.HeroWon,
		Exchanges:   res.Exchanges,
		Attacks:     len(res.Attacks),
		HeroHealth:  s.hero.Health,
		DamageDealt: out.DamageDealt,
		DamageTaken: out.DamageTaken,
	}))

	if !out.HeroWon {
		out.HeroDefeated = true
		s.state = StateDefeated
		log.Info(LogMsgHeroDefeated, LogKeyEnemy, enemy.Name, LogKeyRoomID, r.ID)
		s.publish(ctx, event.NewHeroDefeatedEvent(s.ID(), r.ID, enemy.Kind, s.graph.Len()))
		return out, nil
	}

	if err := s.graph.RemoveEnemy(r.ID, enemy.ID); err != nil {
		return nil, err
	}
	s.kills++
	out.DyingPhrase = unit.DyingPhrase(enemy, s.rng)
	log.Info(LogMsgEnemyDefeated, LogKeyEnemy, enemy.Name, LogKeyDyingPhrase, out.DyingPhrase)
	s.publish(ctx, event.NewEnemyDefeatedEvent(s.ID(), r.ID, enemy, out.DyingPhrase))
	return out, nil
}

// Move walks the hero to the previous or next room. Moving forward out of a
// room with enemies fails unless that room was already cleared once.
func (s *Session) Move(ctx context.Context, dir domain.Direction) (*domain.Room, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	ctx = s.Context(ctx)

	from := s.current
	rooms := s.graph.Len()
	next, err := s.graph.Advance(from.ID, dir)
	if err != nil {
		return nil, err
	}
	generated := s.graph.Len() > rooms
	s.enter(next)

	logger.FromContext(ctx).Info(LogMsgRoomEntered,
		LogKeyRoomID, next.ID,
		LogKeyDirection, dir,
		LogKeyEnemies, len(next.Enemies))
	s.publish(ctx, event.NewRoomEnteredEvent(s.ID(), from.ID, next, dir, generated))
	return next, nil
}

// Equip equips the first carried item named name
func (s *Session) Equip(ctx context.Context, name string) error {
	if err := s.alive(); err != nil {
		return err
	}
	ctx = s.Context(ctx)

	it := inventory.Find(s.hero, name)
	if err := inventory.Equip(s.hero, name); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgItemEquipped, LogKeyItem, name)
	s.publish(ctx, event.NewItemEvent(event.ItemEquipped, s.ID(), it, 0))
	return nil
}

// Unequip moves the equipped item named name back to the inventory
func (s *Session) Unequip(ctx context.Context, name string) error {
	if err := s.alive(); err != nil {
		return err
	}
	ctx = s.Context(ctx)

	it, _, _ := inventory.FindEquipped(s.hero, name)
	if err := inventory.Unequip(s.hero, name); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgItemUnequipped, LogKeyItem, name)
	s.publish(ctx, event.NewItemEvent(event.ItemUnequipped, s.ID(), it, 0))
	return nil
}

// Use consumes the first carried consumable named name and returns the
// health restored
func (s *Session) Use(ctx context.Context, name string) (float64, error) {
	if err := s.alive(); err != nil {
		return 0, err
	}
	ctx = s.Context(ctx)

	it := findConsumable(s.hero, name)
	healed, err := inventory.Use(s.hero, name)
	if err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Info(LogMsgItemUsed, LogKeyItem, name, LogKeyHealed, healed)
	s.publish(ctx, event.NewItemEvent(event.ItemUsed, s.ID(), it, healed))
	return healed, nil
}

// Give puts an item into the hero's inventory
func (s *Session) Give(ctx context.Context, it *domain.Item) error {
	if err := s.alive(); err != nil {
		return err
	}
	inventory.Add(s.hero, it)
	logger.FromContext(s.Context(ctx)).Debug(LogMsgItemGiven, LogKeyItem, it.Name)
	return nil
}

func (s *Session) alive() error {
	if s.state == StateDefeated {
		return domain.ErrGameOver
	}
	return nil
}

func (s *Session) enter(r *domain.Room) {
	s.current = r
	s.hero.Room = r.ID
}

func (s *Session) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, LogKeyEventType, evt.Type, "error", err)
	}
}

func findEnemy(r *domain.Room, name string) *domain.Enemy {
	for _, e := range r.Enemies {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func findConsumable(h *domain.Hero, name string) *domain.Item {
	for _, it := range h.Inventory {
		if it.Name == name && it.Kind.Consumable() {
			return it
		}
	}
	return nil
}
