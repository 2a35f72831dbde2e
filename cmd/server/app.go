package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/idlemon-api/internal/engine"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	"github.com/KirkDiggler/idlemon-api/internal/gamedata"
	battlev1alpha1 "github.com/KirkDiggler/idlemon-api/internal/handlers/battle/v1alpha1"
	"github.com/KirkDiggler/idlemon-api/internal/handlers/gateway"
	"github.com/KirkDiggler/idlemon-api/internal/orchestrators/battle"
	"github.com/KirkDiggler/idlemon-api/internal/orchestrators/encounter"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/clock"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/rng"
	"github.com/KirkDiggler/idlemon-api/internal/redis"
	battlesession "github.com/KirkDiggler/idlemon-api/internal/repositories/battle_session"
)

// app is the wired dependency graph behind both listeners
type app struct {
	handler *battlev1alpha1.Handler
	gateway *gateway.Gateway
	sweeper *battle.Sweeper
	closers []func() error
}

func newApp(ctx context.Context, cfg *Config) (*app, error) {
	a := &app{}

	dex, err := gamedata.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load game data")
	}

	source := rng.NewRandom()
	if cfg.Battle.Seed != 0 {
		source = rng.NewPCG(cfg.Battle.Seed)
	}

	eng, err := engine.New(&engine.Config{
		Dex:            dex,
		Source:         source,
		ShakeRoller:    dice.DefaultRoller,
		IDGenerator:    idgen.NewUUID("creature"),
		CritChance:     cfg.Battle.CritChance,
		CritMultiplier: cfg.Battle.CritMultiplier,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	repo, err := a.newRepository(ctx, &cfg.Redis)
	if err != nil {
		return nil, err
	}

	// timeouts flagged by the sweeper reach connected sockets through the bus
	eventBus := events.NewBus()

	battles, err := battle.NewOrchestrator(&battle.Config{
		Repository:  repo,
		Engine:      eng,
		Clock:       clock.New(),
		EventBus:    eventBus,
		IdleTimeout: cfg.Battle.IdleTimeout,
		EvictAfter:  cfg.Battle.EvictAfter,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create battle orchestrator")
	}

	encounters, err := encounter.NewOrchestrator(&encounter.Config{
		Zones:   dex,
		Engine:  eng,
		Battles: battles,
		Source:  source,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create encounter orchestrator")
	}

	a.sweeper, err = battle.NewSweeper(&battle.SweeperConfig{
		Service:       battles,
		SweepInterval: cfg.Battle.SweepInterval,
		EvictInterval: cfg.Battle.EvictInterval,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sweeper")
	}

	a.handler, err = battlev1alpha1.NewHandler(&battlev1alpha1.HandlerConfig{
		BattleService:    battles,
		EncounterService: encounters,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create battle handler")
	}

	a.gateway, err = gateway.New(&gateway.Config{
		BattleService:  battles,
		EventBus:       eventBus,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gateway")
	}

	return a, nil
}

func (a *app) newRepository(ctx context.Context, cfg *RedisConfig) (battlesession.Repository, error) {
	if len(cfg.Addrs) == 0 {
		slog.InfoContext(ctx, "Using in-memory battle store")
		return battlesession.NewInMemory(), nil
	}

	client, err := redis.Connect(cfg.Addrs, &redis.Options{
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
		UseTLS:   cfg.UseTLS,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}
	a.closers = append(a.closers, client.Close)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}
	slog.InfoContext(ctx, "Using redis battle store", "addrs", cfg.Addrs)

	return battlesession.NewRedis(&battlesession.RedisConfig{
		Client: client,
		TTL:    cfg.SessionTTL,
	})
}

func (a *app) close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
}
