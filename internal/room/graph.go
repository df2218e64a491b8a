package room

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/roomcrawl/internal/dice"
	"github.com/osse101/roomcrawl/internal/domain"
	"github.com/osse101/roomcrawl/internal/unit"
)

// Spawner creates an enemy of kind bound to a room
type Spawner func(kind domain.EnemyKind, room domain.RoomID) (*domain.Enemy, error)

// Option configures a Graph
type Option func(*Graph)

// WithMaxEnemies caps how many enemies a generated room may hold
func WithMaxEnemies(n int) Option {
	return func(g *Graph) {
		if n >= 0 {
			g.maxEnemies = n
		}
	}
}

// WithSpawner replaces the enemy factory
func WithSpawner(fn Spawner) Option {
	return func(g *Graph) {
		if fn != nil {
			g.spawn = fn
		}
	}
}

// Graph is a linear path of rooms generated on demand. Each room links to
// at most one previous and one next room, and a link, once made, is never
// replaced.
type Graph struct {
	rng        dice.Roller
	maxEnemies int
	spawn      Spawner
	rooms      []*domain.Room
}

// NewGraph creates an empty graph drawing from rng
func NewGraph(rng dice.Roller, opts ...Option) *Graph {
	g := &Graph{
		rng:        rng,
		maxEnemies: domain.DefaultMaxEnemiesPerRoom,
		spawn:      unit.Spawn,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Start returns the head of the path, generating it on first call.
// The first room gets its enemies drawn like any other room.
func (g *Graph) Start() (*domain.Room, error) {
	if len(g.rooms) > 0 {
		return g.rooms[0], nil
	}
	return g.generate(domain.NoRoom)
}

// Room looks up a room by id
func (g *Graph) Room(id domain.RoomID) (*domain.Room, bool) {
	idx := int(id) - 1
	if idx < 0 || idx >= len(g.rooms) {
		return nil, false
	}
	return g.rooms[idx], true
}

// Len is the number of rooms generated so far
func (g *Graph) Len() int {
	return len(g.rooms)
}

// Advance returns the room reached by leaving from in direction dir.
// Going forward out of a room with enemies fails with ErrSlotBlocked unless
// the next room already exists.
func (g *Graph) Advance(from domain.RoomID, dir domain.Direction) (*domain.Room, error) {
	r, ok := g.Room(from)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrNoSuchRoom, from)
	}

	switch dir {
	case domain.DirectionPrevious:
		if !r.HasPrev() {
			return nil, fmt.Errorf("%w: %d has no previous room", domain.ErrNoSuchRoom, from)
		}
		prev, _ := g.Room(r.Prev)
		return prev, nil
	case domain.DirectionNext:
		if r.HasNext() {
			next, _ := g.Room(r.Next)
			return next, nil
		}
		if r.Blocked() {
			return nil, fmt.Errorf("%w: %d enemies in room %d", domain.ErrSlotBlocked, len(r.Enemies), from)
		}
		return g.GenerateNext(from)
	}
	return nil, fmt.Errorf("%w: unknown direction %q", domain.ErrNoSuchRoom, dir)
}

// GenerateNext creates and links the room after from. If from already has a
// next room that room is returned unchanged.
func (g *Graph) GenerateNext(from domain.RoomID) (*domain.Room, error) {
	r, ok := g.Room(from)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrNoSuchRoom, from)
	}
	if r.HasNext() {
		next, _ := g.Room(r.Next)
		return next, nil
	}

	next, err := g.generate(r.ID)
	if err != nil {
		return nil, err
	}
	r.Next = next.ID
	return next, nil
}

// RemoveEnemy kicks an enemy out of a room
func (g *Graph) RemoveEnemy(roomID domain.RoomID, enemyID uuid.UUID) error {
	r, ok := g.Room(roomID)
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrNoSuchRoom, roomID)
	}
	for i, e := range r.Enemies {
		if e.ID != enemyID {
			continue
		}
		r.Enemies = append(r.Enemies[:i:i], r.Enemies[i+1:]...)
		e.Room = domain.NoRoom
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrEnemyNotFound, enemyID)
}

func (g *Graph) generate(prev domain.RoomID) (*domain.Room, error) {
	r := &domain.Room{
		ID:   domain.RoomID(len(g.rooms) + 1),
		Prev: prev,
	}

	count := g.rng.Intn(g.maxEnemies + 1)
	r.Enemies = make([]*domain.Enemy, 0, count)
	for i := 0; i < count; i++ {
		e, err := g.spawn(unit.RandomKind(g.rng), r.ID)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtSpawnFailed, r.ID, err)
		}
		r.Enemies = append(r.Enemies, e)
	}

	g.rooms = append(g.rooms, r)
	return r, nil
}
