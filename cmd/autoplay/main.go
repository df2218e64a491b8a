// Command autoplay plays a batch of seeded sessions with a greedy policy
// and logs one report per run.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/roomcrawl/internal/autoplay"
	"github.com/osse101/roomcrawl/internal/config"
	"github.com/osse101/roomcrawl/internal/event"
	"github.com/osse101/roomcrawl/internal/game"
	"github.com/osse101/roomcrawl/internal/item"
	"github.com/osse101/roomcrawl/internal/metrics"
	"github.com/osse101/roomcrawl/internal/worker"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Autoplay failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	bus, shutdown, err := newBus(cfg)
	if err != nil {
		return err
	}
	defer shutdown()

	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return err
	}

	cache := game.NewCache(cfg.SessionCacheSize, cfg.SessionTTL)
	policy := autoplay.Policy{HealBelow: cfg.AutoplayHealBelow, MaxRooms: cfg.AutoplayMaxRooms}

	pool := worker.NewPool(cfg.AutoplayWorkers, cfg.AutoplayRuns)
	pool.Start(ctx)

	jobs := make([]*autoplay.Job, cfg.AutoplayRuns)
	for i := range jobs {
		jobs[i] = &autoplay.Job{
			Seed:       runSeed(cfg.Seed, i),
			Policy:     policy,
			Catalog:    catalog,
			Loadout:    autoplay.DefaultLoadout,
			MaxEnemies: cfg.MaxEnemiesPerRoom,
			Bus:        bus,
			Cache:      cache,
		}
		pool.Enqueue(jobs[i])
	}
	pool.Drain()

	survived := 0
	for _, job := range jobs {
		if job.Err != nil {
			slog.Warn("Run failed", "seed", job.Seed, "error", job.Err)
			continue
		}
		if !job.Report.Defeated {
			survived++
		}
		slog.Info("Run report",
			"session_id", job.Report.SessionID,
			"seed", job.Report.Seed,
			"rooms", job.Report.Rooms,
			"kills", job.Report.Kills,
			"fights", job.Report.Fights,
			"healed", job.Report.Healed,
			"defeated", job.Report.Defeated,
			"final_health", job.Report.FinalHealth)
	}
	slog.Info("Autoplay complete", "runs", len(jobs), "survived", survived, "cached_sessions", cache.Len())

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, prometheus.DefaultGatherer); err != nil {
			return err
		}
		slog.Info("Metrics written", "path", cfg.MetricsFile)
	}
	return ctx.Err()
}

func loadCatalog(cfg *config.Config) (*item.Catalog, error) {
	if cfg.CatalogPath == "" {
		return item.DefaultCatalog()
	}
	return item.LoadCatalog(cfg.CatalogPath)
}

// newBus returns the in-memory bus, wrapped with retries and a dead-letter
// file when a path is configured
func newBus(cfg *config.Config) (event.Bus, func(), error) {
	mem := event.NewMemoryBus()
	if cfg.DeadLetterPath == "" {
		return mem, func() {}, nil
	}
	rp, err := event.NewResilientPublisher(mem, event.RetryMaxAttempts, event.RetryInitialDelay, cfg.DeadLetterPath)
	if err != nil {
		return nil, nil, err
	}
	return rp, func() {
		if err := rp.Shutdown(context.Background()); err != nil {
			slog.Warn("Event publisher shutdown failed", "error", err)
		}
	}, nil
}

// runSeed derives the seed of run i. A zero base keeps every run time-seeded.
func runSeed(base int64, i int) int64 {
	if base == 0 {
		return 0
	}
	return base + int64(i)
}
