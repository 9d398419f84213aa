// Package dungeon runs the level lifecycle: it owns the current depth, keeps
// a bounded cache of visited levels, moves the player between them through
// staircases and snapshots the entities of every level it leaves.
package dungeon

//go:generate mockgen -destination=mock/mock_populator.go -package=dungeonmock github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon Populator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/levelcache"
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/progress"
)

// Defaults applied to zero Config values
const (
	DefaultWidth        = 80
	DefaultHeight       = 50
	DefaultVictoryDepth = 20
	DefaultFOVRadius    = 8
)

// Populator fills a freshly generated level with enemies and items
type Populator interface {
	Populate(ctx context.Context, input *PopulateInput) (*PopulateOutput, error)
}

// PopulateInput is the level that was just generated and entered
type PopulateInput struct {
	Level *Level
}

// PopulateOutput reports how many entities were spawned
type PopulateOutput struct {
	Enemies int
	Items   int
}

// Config holds the dependencies and settings of a Manager
type Config struct {
	Generator mapgen.Generator
	World     entities.World
	Roller    dice.Roller
	Progress  progress.Repository
	EventBus  events.EventBus

	// Optional
	Clock          clock.Clock
	Populator      Populator
	EvictionPolicy levelcache.EvictionPolicy

	Width         int
	Height        int
	Algorithm     mapgen.Algorithm
	VictoryDepth  int
	Endless       bool
	CacheCapacity int
	FOVRadius     int
}

func (c *Config) applyDefaults() {
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Algorithm == "" {
		c.Algorithm = mapgen.AlgorithmRooms
	}
	if c.VictoryDepth == 0 {
		c.VictoryDepth = DefaultVictoryDepth
	}
	if c.CacheCapacity == 0 {
		c.CacheCapacity = levelcache.DefaultCapacity
	}
	if c.FOVRadius == 0 {
		c.FOVRadius = DefaultFOVRadius
	}
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.World == nil {
		vb.RequiredField("World")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Progress == nil {
		vb.RequiredField("Progress")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	errors.ValidatePositive("Width", c.Width, vb)
	errors.ValidatePositive("Height", c.Height, vb)
	errors.ValidateEnum("Algorithm", string(c.Algorithm), mapgen.Algorithms(), vb)
	if c.VictoryDepth < 2 {
		vb.InvalidField("VictoryDepth", "must be at least 2")
	}
	errors.ValidateRange("CacheCapacity", c.CacheCapacity, 1, 64, vb)
	errors.ValidatePositive("FOVRadius", c.FOVRadius, vb)

	return vb.Build()
}

// Manager owns the dungeon levels of one run. It is not safe for concurrent
// use; callers drive it from a single game loop.
type Manager struct {
	generator mapgen.Generator
	world     entities.World
	roller    dice.Roller
	progress  progress.Repository
	bus       events.EventBus
	clock     clock.Clock
	populator Populator

	width        int
	height       int
	algorithm    mapgen.Algorithm
	victoryDepth int
	endless      bool
	fovRadius    int

	cache        *levelcache.Cache[*Level]
	depth        int
	personalBest int
	started      bool
}

// New creates a Manager. Call Start or InitializeFirst before moving
// between levels.
func New(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	c := *cfg
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	cache, err := levelcache.New[*Level](c.CacheCapacity, c.EvictionPolicy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create level cache")
	}

	return &Manager{
		generator:    c.Generator,
		world:        c.World,
		roller:       c.Roller,
		progress:     c.Progress,
		bus:          c.EventBus,
		clock:        c.Clock,
		populator:    c.Populator,
		width:        c.Width,
		height:       c.Height,
		algorithm:    c.Algorithm,
		victoryDepth: c.VictoryDepth,
		endless:      c.Endless,
		fovRadius:    c.FOVRadius,
		cache:        cache,
		depth:        1,
		personalBest: 1,
	}, nil
}

// StartInput names the player beginning a run
type StartInput struct {
	PlayerID string
}

// StartOutput is the first level of the run
type StartOutput struct {
	Level *Level
}

// Start generates the first level and places the player on it
func (m *Manager) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := m.generator.Generate(ctx, &mapgen.GenerateInput{
		Depth:     1,
		Width:     m.width,
		Height:    m.height,
		Algorithm: m.algorithm,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate first level")
	}

	first, err := m.InitializeFirst(ctx, &InitializeFirstInput{
		Layout:   out.Layout,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	return &StartOutput{Level: first.Level}, nil
}

// InitializeFirstInput seeds the dungeon with an already generated layout
type InitializeFirstInput struct {
	Layout *mapgen.Layout

	// PlayerID is optional. When set the player is moved to the spawn point
	// and their stored personal best is loaded.
	PlayerID string
}

// InitializeFirstOutput is the level now cached at depth 1
type InitializeFirstOutput struct {
	Level *Level
}

// InitializeFirst makes layout the first level, replacing any earlier run.
// Every non-player entity left in the world from that run is destroyed.
func (m *Manager) InitializeFirst(ctx context.Context, input *InitializeFirstInput) (*InitializeFirstOutput, error) {
	if input == nil || input.Layout == nil || input.Layout.Map == nil {
		return nil, errors.InvalidArgument("layout is required")
	}

	var player *entities.Entity
	if input.PlayerID != "" {
		p, ok := m.world.Get(input.PlayerID)
		if !ok {
			return nil, errors.NotFoundf("player %s not found", input.PlayerID)
		}
		player = p
	}

	level := newLevel(1, input.Layout)
	if err := m.placeStairs(level); err != nil {
		return nil, errors.Wrap(err, "failed to place staircases")
	}

	for _, e := range m.world.NonPlayer() {
		m.world.Destroy(e.ID)
	}
	m.cache.Clear(0)
	m.cache.Put(1, level)
	m.depth = 1
	m.personalBest = 1
	m.started = true

	m.spawnStairs(level)

	if player != nil {
		m.personalBest = m.loadPersonalBest(ctx, progressKey(player))
		if err := m.world.SetPosition(player.ID, level.Arrival()); err != nil {
			return nil, errors.Wrap(err, "failed to place player")
		}
		level.Observe(level.Arrival(), m.fovRadius)
	}

	m.populate(ctx, level)

	slog.Info("Dungeon initialized",
		"algorithm", level.Algorithm,
		"rooms", len(level.Rooms),
		"personal_best", m.personalBest,
	)

	return &InitializeFirstOutput{Level: level}, nil
}

// TransitionInput names the player using a staircase
type TransitionInput struct {
	PlayerID string
}

// Descend moves the player one level deeper. Reaching the victory depth
// outside endless mode reports victory instead of moving. An error means
// nothing changed.
func (m *Manager) Descend(ctx context.Context, input *TransitionInput) (*TransitionResult, error) {
	player, err := m.transitionPlayer(input)
	if err != nil {
		return nil, err
	}

	from := m.depth
	if !m.endless && from >= m.victoryDepth {
		m.recordVictory(ctx, progressKey(player), from)
		m.publish(ctx, EventCompleted, player, from)

		return &TransitionResult{
			Success:       true,
			Outcome:       OutcomeVictory,
			Message:       "You have reached the Victory Chamber!",
			PreviousDepth: from,
			NewDepth:      from,
			Victory:       true,
		}, nil
	}

	to := from + 1
	next, cached := m.cache.Get(to)
	if !cached {
		next, err = m.generateLevel(ctx, to)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to descend to depth %d", to)
		}
	}

	m.leave(from)
	if cached {
		m.restore(next)
	} else {
		m.cache.Put(to, next)
		m.spawnStairs(next)
	}
	m.depth = to

	newRecord := to > m.personalBest
	if newRecord {
		m.personalBest = to
		m.recordDepth(ctx, progressKey(player), to)
	}

	m.arrive(player.ID, next, next.Arrival())
	evicted := m.evict()
	if !cached {
		m.populate(ctx, next)
	}

	m.publish(ctx, EventLevelCompleted, player, from)
	if newRecord {
		m.publish(ctx, EventDepthRecord, player, to)
	}
	m.publish(ctx, EventLevelEntered, player, to)

	slog.Info("Descended",
		"from", from,
		"to", to,
		"cached", cached,
		"new_record", newRecord,
		"evicted", evicted,
	)

	return &TransitionResult{
		Success:       true,
		Outcome:       OutcomeDescended,
		Message:       fmt.Sprintf("Descending to Level %d...", to),
		PreviousDepth: from,
		NewDepth:      to,
		NewRecord:     newRecord,
		FreshLevel:    !cached,
		Evicted:       evicted,
	}, nil
}

// Ascend moves the player one level up. Ascending from the first level is
// blocked, and a previous level missing from the cache is reported as
// OutcomeCacheInconsistent. Neither changes any state.
func (m *Manager) Ascend(ctx context.Context, input *TransitionInput) (*TransitionResult, error) {
	player, err := m.transitionPlayer(input)
	if err != nil {
		return nil, err
	}

	from := m.depth
	if from <= 1 {
		return &TransitionResult{
			Outcome:       OutcomeBlocked,
			Message:       "You cannot ascend further.",
			PreviousDepth: from,
			NewDepth:      from,
		}, nil
	}

	to := from - 1
	prev, ok := m.cache.Get(to)
	if !ok {
		slog.Error("Previous level missing from cache",
			"depth", to,
			"current_depth", from,
			"cached", m.cache.Depths(),
		)
		return &TransitionResult{
			Outcome:       OutcomeCacheInconsistent,
			Message:       fmt.Sprintf("Level %d is no longer available.", to),
			PreviousDepth: from,
			NewDepth:      from,
		}, nil
	}

	m.leave(from)
	m.restore(prev)
	m.depth = to

	m.arrive(player.ID, prev, prev.Return())
	evicted := m.evict()

	m.publish(ctx, EventLevelEntered, player, to)

	slog.Info("Ascended",
		"from", from,
		"to", to,
	)

	return &TransitionResult{
		Success:       true,
		Outcome:       OutcomeAscended,
		Message:       fmt.Sprintf("Ascending to Level %d...", to),
		PreviousDepth: from,
		NewDepth:      to,
		Evicted:       evicted,
	}, nil
}

// CanTransition reports whether the player stands on a staircase leading in
// the given direction
func (m *Manager) CanTransition(playerID string, dir entities.Direction) bool {
	player, ok := m.world.Get(playerID)
	if !ok || player.Components.Position == nil {
		return false
	}
	for _, e := range m.world.AtPosition(*player.Components.Position) {
		if s := e.Components.Staircase; s != nil && s.Direction == dir {
			return true
		}
	}
	return false
}

// CurrentDepth returns the depth the player is on
func (m *Manager) CurrentDepth() int {
	return m.depth
}

// PersonalBest returns the deepest level reached, including stored
// progress from earlier runs
func (m *Manager) PersonalBest() int {
	return m.personalBest
}

// CurrentLevel returns the active level, or nil before the first level is
// initialized
func (m *Manager) CurrentLevel() *Level {
	level, _ := m.cache.Get(m.depth)
	return level
}

// CurrentMap returns the map of the active level
func (m *Manager) CurrentMap() *grid.Field {
	if level := m.CurrentLevel(); level != nil {
		return level.Map
	}
	return nil
}

// IsLevelCached reports whether depth is resident
func (m *Manager) IsLevelCached(depth int) bool {
	return m.cache.Has(depth)
}

// CachedDepths returns the resident depths in ascending order
func (m *Manager) CachedDepths() []int {
	return m.cache.Depths()
}

// CachedLevelCount returns the number of resident levels
func (m *Manager) CachedLevelCount() int {
	return m.cache.Len()
}

// IsVictoryDepth reports whether depth ends the run. Always false in
// endless mode.
func (m *Manager) IsVictoryDepth(depth int) bool {
	return !m.endless && depth >= m.victoryDepth
}

// ClearCache drops every level except the active one
func (m *Manager) ClearCache() {
	m.cache.Clear(m.depth)
}

// Observe recomputes the field of view of the player on the active level
// and returns the visible tiles
func (m *Manager) Observe(playerID string) ([]grid.Point, error) {
	level := m.CurrentLevel()
	if level == nil {
		return nil, errors.FailedPrecondition("dungeon has not been initialized")
	}
	player, ok := m.world.Get(playerID)
	if !ok {
		return nil, errors.NotFoundf("player %s not found", playerID)
	}
	if player.Components.Position == nil {
		return nil, errors.FailedPreconditionf("player %s has no position", playerID)
	}
	return level.Observe(*player.Components.Position, m.fovRadius), nil
}

func (m *Manager) transitionPlayer(input *TransitionInput) (*entities.Entity, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !m.started {
		return nil, errors.FailedPrecondition("dungeon has not been initialized")
	}
	player, ok := m.world.Get(input.PlayerID)
	if !ok {
		return nil, errors.NotFoundf("player %s not found", input.PlayerID)
	}
	return player, nil
}

// progressKey is the name progress is stored under. Entity IDs change
// between runs, so the player name is preferred.
func progressKey(player *entities.Entity) string {
	if p := player.Components.Player; p != nil && p.Name != "" {
		return p.Name
	}
	return player.ID
}

func (m *Manager) generateLevel(ctx context.Context, depth int) (*Level, error) {
	out, err := m.generator.Generate(ctx, &mapgen.GenerateInput{
		Depth:     depth,
		Width:     m.width,
		Height:    m.height,
		Algorithm: m.algorithm,
	})
	if err != nil {
		return nil, err
	}

	level := newLevel(depth, out.Layout)
	if err := m.placeStairs(level); err != nil {
		return nil, errors.Wrap(err, "failed to place staircases")
	}

	slog.Debug("Level generated",
		"depth", depth,
		"algorithm", level.Algorithm,
		"rooms", len(level.Rooms),
		"attempts", out.Attempts,
	)
	return level, nil
}

// leave snapshots every non-player entity into the level at depth and
// clears them from the world
func (m *Manager) leave(depth int) {
	live := m.world.NonPlayer()
	if level, ok := m.cache.Get(depth); ok {
		level.Entities = entities.CaptureAll(live)
		level.LastVisited = m.clock.Now()
	}
	for _, e := range live {
		m.world.Destroy(e.ID)
	}
}

// restore respawns the surviving entities of a cached level. The snapshot
// list is consumed.
func (m *Manager) restore(level *Level) {
	for _, snap := range level.Entities {
		if !snap.Alive {
			continue
		}
		m.world.Spawn(snap.Components)
	}
	level.Entities = nil
}

func (m *Manager) arrive(playerID string, level *Level, at grid.Point) {
	if err := m.world.SetPosition(playerID, at); err != nil {
		slog.Warn("Failed to place player",
			"player_id", playerID,
			"depth", level.Depth,
			"error", err,
		)
		return
	}
	level.Observe(at, m.fovRadius)
}

func (m *Manager) evict() []int {
	evicted := m.cache.Evict(m.depth)
	if len(evicted) > 0 {
		slog.Debug("Evicted levels",
			"depths", evicted,
			"current_depth", m.depth,
		)
	}
	return evicted
}

func (m *Manager) populate(ctx context.Context, level *Level) {
	if m.populator == nil {
		return
	}
	out, err := m.populator.Populate(ctx, &PopulateInput{Level: level})
	if err != nil {
		slog.Warn("Failed to populate level",
			"depth", level.Depth,
			"error", err,
		)
		return
	}
	slog.Debug("Level populated",
		"depth", level.Depth,
		"enemies", out.Enemies,
		"items", out.Items,
	)
}

func (m *Manager) loadPersonalBest(ctx context.Context, playerID string) int {
	out, err := m.progress.Get(ctx, &progress.GetInput{PlayerID: playerID})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.Warn("Failed to load progress",
				"player_id", playerID,
				"error", err,
			)
		}
		return 1
	}
	return max(1, out.Progress.PersonalBest)
}

func (m *Manager) recordDepth(ctx context.Context, playerID string, depth int) {
	_, err := m.progress.RecordDepth(ctx, &progress.RecordDepthInput{
		PlayerID: playerID,
		Depth:    depth,
	})
	if err != nil {
		slog.Warn("Failed to record depth",
			"player_id", playerID,
			"depth", depth,
			"error", err,
		)
	}
}

func (m *Manager) recordVictory(ctx context.Context, playerID string, depth int) {
	_, err := m.progress.RecordVictory(ctx, &progress.RecordVictoryInput{
		PlayerID: playerID,
		Depth:    depth,
	})
	if err != nil {
		slog.Warn("Failed to record victory",
			"player_id", playerID,
			"depth", depth,
			"error", err,
		)
	}
}
