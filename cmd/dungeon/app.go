package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dungeon/internal/config"
	"github.com/KirkDiggler/rpg-dungeon/internal/difficulty"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/roller"
	"github.com/KirkDiggler/rpg-dungeon/internal/population"
	"github.com/KirkDiggler/rpg-dungeon/internal/redis"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/progress"
)

// app is one wired dungeon run
type app struct {
	seed     uint64
	world    *entities.MemoryWorld
	scaler   *difficulty.Scaler
	bus      events.EventBus
	manager  *dungeon.Manager
	playerID string
	close    func()
}

// newApp wires every dependency of a run. A zero seed is replaced by one
// taken from the clock.
func newApp(ctx context.Context, c *config.Config, seed uint64) (*app, error) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := roller.NewSeeded(seed)

	gen, err := mapgen.New(c.MapgenConfig(r))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create generator")
	}

	scaler, err := difficulty.New(c.ScalerConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scaler")
	}

	world := entities.NewMemoryWorld(idgen.NewUUID("ent"))

	bestiary, err := loadBestiary(c.Population.BestiaryPath)
	if err != nil {
		return nil, err
	}
	pop, err := population.New(&population.Config{
		World:           world,
		Roller:          r,
		Scaler:          scaler,
		Bestiary:        bestiary,
		EnemiesPerLevel: c.Population.EnemiesPerLevel,
		LootPiles:       c.Population.LootPiles,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create populator")
	}

	repo, closeRepo := newProgressRepository(ctx, c)
	bus := events.NewBus()

	manager, err := dungeon.New(&dungeon.Config{
		Generator:     gen,
		World:         world,
		Roller:        r,
		Progress:      repo,
		EventBus:      bus,
		Populator:     pop,
		Width:         c.Dungeon.Width,
		Height:        c.Dungeon.Height,
		Algorithm:     mapgen.Algorithm(c.Dungeon.Algorithm),
		VictoryDepth:  c.Dungeon.VictoryDepth,
		Endless:       c.Dungeon.Endless,
		CacheCapacity: c.Dungeon.CacheCapacity,
		FOVRadius:     c.Dungeon.FOVRadius,
	})
	if err != nil {
		closeRepo()
		return nil, errors.Wrap(err, "failed to create dungeon")
	}

	player := world.Spawn(entities.Components{
		Name:           c.Dungeon.PlayerName,
		Player:         &entities.Player{Name: c.Dungeon.PlayerName},
		Position:       entities.At(grid.Point{}),
		Health:         &entities.Health{Current: 100, Maximum: 100},
		Combat:         &entities.Combat{Attack: 10, Defense: 5},
		Actor:          &entities.Actor{Speed: entities.DefaultSpeed},
		Renderable:     &entities.Renderable{Glyph: '@', Color: "yellow"},
		BlocksMovement: true,
	})

	slog.Info("Run created",
		"seed", seed,
		"player", c.Dungeon.PlayerName,
		"algorithm", c.Dungeon.Algorithm,
	)

	return &app{
		seed:     seed,
		world:    world,
		scaler:   scaler,
		bus:      bus,
		manager:  manager,
		playerID: player.ID,
		close:    closeRepo,
	}, nil
}

func loadBestiary(path string) (*population.Bestiary, error) {
	if path == "" {
		return nil, nil
	}
	b, err := population.LoadBestiary(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load bestiary")
	}
	return b, nil
}

// newProgressRepository uses Redis when an address is configured and
// reachable, otherwise an in-memory store
func newProgressRepository(ctx context.Context, c *config.Config) (progress.Repository, func()) {
	noop := func() {}
	if c.Redis.Addr == "" {
		return progress.NewInMemory(nil), noop
	}

	client, err := redis.NewClient(c.Redis.Addr, c.RedisOptions())
	if err != nil {
		slog.Warn("Invalid redis settings, keeping progress in memory", "error", err)
		return progress.NewInMemory(nil), noop
	}
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable, keeping progress in memory",
			"addr", c.Redis.Addr,
			"error", err,
		)
		_ = client.Close()
		return progress.NewInMemory(nil), noop
	}

	repo, err := progress.NewRedisRepository(&progress.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		_ = client.Close()
		slog.Warn("Failed to create redis progress store", "error", err)
		return progress.NewInMemory(nil), noop
	}
	return repo, func() { _ = client.Close() }
}
