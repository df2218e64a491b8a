package autoplay

import (
	"context"
	"fmt"

	"github.com/osse101/roomcrawl/internal/dice"
	"github.com/osse101/roomcrawl/internal/event"
	"github.com/osse101/roomcrawl/internal/game"
	"github.com/osse101/roomcrawl/internal/item"
	"github.com/osse101/roomcrawl/internal/logger"
	"github.com/osse101/roomcrawl/internal/metrics"
	"github.com/osse101/roomcrawl/internal/room"
	"github.com/osse101/roomcrawl/internal/unit"
)

// Job plays one seeded session. It implements worker.Job; the report is
// available once Process returns.
type Job struct {
	Seed       int64
	Policy     Policy
	Catalog    *item.Catalog
	Loadout    []string
	MaxEnemies int
	Bus        event.Bus
	Cache      *game.Cache

	Report Report
	Err    error
}

// Process implements worker.Job
func (j *Job) Process(ctx context.Context) error {
	rep, err := j.run(ctx)
	j.Report, j.Err = rep, err
	return err
}

func (j *Job) run(ctx context.Context) (Report, error) {
	rng := dice.New(j.Seed)
	reg := item.NewRegistry(rng)
	hero := unit.NewDefaultHero(DefaultHeroName)

	opts := []game.Option{
		game.WithRoller(rng),
		game.WithGraph(room.NewGraph(rng, room.WithMaxEnemies(j.MaxEnemies))),
	}
	if j.Bus != nil {
		opts = append(opts, game.WithBus(j.Bus))
	}
	s, err := game.NewSession(ctx, hero, opts...)
	if err != nil {
		return Report{Seed: j.Seed}, fmt.Errorf(ErrFmtSession, err)
	}
	if j.Cache != nil {
		j.Cache.Put(s)
	}
	ctx = s.Context(ctx)
	log := logger.FromContext(ctx)
	log.Info(LogMsgRunStarted, "seed", j.Seed)

	catalog := j.Catalog
	if catalog == nil && len(j.Loadout) > 0 {
		if catalog, err = item.DefaultCatalog(); err != nil {
			return Report{SessionID: s.ID(), Seed: j.Seed}, err
		}
	}
	for _, key := range j.Loadout {
		it, err := catalog.Create(reg, key)
		if err != nil {
			return Report{SessionID: s.ID(), Seed: j.Seed}, fmt.Errorf(ErrFmtLoadout, key, err)
		}
		if err := s.Give(ctx, it); err != nil {
			return Report{SessionID: s.ID(), Seed: j.Seed}, err
		}
	}

	rep, err := j.Policy.Play(ctx, s)
	rep.Seed = j.Seed
	if err != nil {
		return rep, err
	}

	metrics.RecordAutoplayRun(rep.Defeated)
	log.Info(LogMsgRunFinished,
		"rooms", rep.Rooms,
		"kills", rep.Kills,
		"fights", rep.Fights,
		"defeated", rep.Defeated,
		"final_health", rep.FinalHealth)
	return rep, nil
}
