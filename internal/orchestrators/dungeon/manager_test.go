package dungeon_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
	mapgenmock "github.com/KirkDiggler/rpg-dungeon/internal/mapgen/mock"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
	dungeonmock "github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon/mock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/roller"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/progress"
	progressmock "github.com/KirkDiggler/rpg-dungeon/internal/repositories/progress/mock"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils/mocks"
)

// recordingBus keeps every published event
type recordingBus struct {
	published []events.Event
	err       error
}

func (b *recordingBus) Publish(_ context.Context, e events.Event) error {
	b.published = append(b.published, e)
	return b.err
}
func (b *recordingBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (b *recordingBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *recordingBus) Unsubscribe(_ string) error { return nil }
func (b *recordingBus) Clear(_ string)             {}
func (b *recordingBus) ClearAll()                  {}

func (b *recordingBus) depths(eventType string) []int {
	var out []int
	for _, e := range b.published {
		if e.Type() != eventType {
			continue
		}
		if d, ok := dungeon.DepthOf(e); ok {
			out = append(out, d)
		}
	}
	return out
}

type ManagerTestSuite struct {
	suite.Suite
	ctx      context.Context
	world    *entities.MemoryWorld
	progress *progress.InMemoryRepository
	bus      *recordingBus
	clock    *clock.Ticking
	playerID string
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (s *ManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.world = entities.NewMemoryWorld(idgen.NewSequential("ent"))
	s.clock = clock.NewTicking(testutils.TestTime, time.Minute)
	s.progress = progress.NewInMemory(s.clock)
	s.bus = &recordingBus{}

	s.playerID = testutils.SpawnTestPlayer(s.world).ID
}

func (s *ManagerTestSuite) config(mutate func(*dungeon.Config)) *dungeon.Config {
	r := roller.NewSeeded(42)
	gen, err := mapgen.New(&mapgen.Config{Roller: r})
	s.Require().NoError(err)

	cfg := &dungeon.Config{
		Generator: gen,
		World:     s.world,
		Roller:    r,
		Progress:  s.progress,
		EventBus:  s.bus,
		Clock:     s.clock,
	}
	if mutate != nil {
		mutate(cfg)
	}
	return cfg
}

func (s *ManagerTestSuite) start(mutate func(*dungeon.Config)) *dungeon.Manager {
	m, err := dungeon.New(s.config(mutate))
	s.Require().NoError(err)

	_, err = m.Start(s.ctx, &dungeon.StartInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	return m
}

func (s *ManagerTestSuite) descend(m *dungeon.Manager) *dungeon.TransitionResult {
	result, err := m.Descend(s.ctx, &dungeon.TransitionInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Require().NotNil(result)
	return result
}

func (s *ManagerTestSuite) ascend(m *dungeon.Manager) *dungeon.TransitionResult {
	result, err := m.Ascend(s.ctx, &dungeon.TransitionInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.Require().NotNil(result)
	return result
}

func (s *ManagerTestSuite) playerAt() grid.Point {
	player, ok := s.world.Get(s.playerID)
	s.Require().True(ok)
	return *player.Components.Position
}

func (s *ManagerTestSuite) TestNewValidatesConfig() {
	testCases := []struct {
		name   string
		mutate func(*dungeon.Config)
		field  string
	}{
		{name: "missing generator", mutate: func(c *dungeon.Config) { c.Generator = nil }, field: "Generator"},
		{name: "missing world", mutate: func(c *dungeon.Config) { c.World = nil }, field: "World"},
		{name: "missing roller", mutate: func(c *dungeon.Config) { c.Roller = nil }, field: "Roller"},
		{name: "missing progress", mutate: func(c *dungeon.Config) { c.Progress = nil }, field: "Progress"},
		{name: "missing event bus", mutate: func(c *dungeon.Config) { c.EventBus = nil }, field: "EventBus"},
		{name: "unknown algorithm", mutate: func(c *dungeon.Config) { c.Algorithm = "maze" }, field: "Algorithm"},
		{name: "victory depth too shallow", mutate: func(c *dungeon.Config) { c.VictoryDepth = 1 }, field: "VictoryDepth"},
		{name: "cache too large", mutate: func(c *dungeon.Config) { c.CacheCapacity = 100 }, field: "CacheCapacity"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			m, err := dungeon.New(s.config(tc.mutate))
			s.Require().Error(err)
			s.Nil(m)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}

	s.Run("nil config", func() {
		_, err := dungeon.New(nil)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *ManagerTestSuite) TestTransitionsRequireInitialization() {
	m, err := dungeon.New(s.config(nil))
	s.Require().NoError(err)

	_, err = m.Descend(s.ctx, &dungeon.TransitionInput{PlayerID: s.playerID})
	s.True(errors.IsFailedPrecondition(err))

	_, err = m.Ascend(s.ctx, &dungeon.TransitionInput{PlayerID: s.playerID})
	s.True(errors.IsFailedPrecondition(err))

	s.Nil(m.CurrentLevel())
	s.Nil(m.CurrentMap())
}

func (s *ManagerTestSuite) TestUnknownPlayer() {
	m := s.start(nil)

	_, err := m.Descend(s.ctx, &dungeon.TransitionInput{PlayerID: "nobody"})
	s.True(errors.IsNotFound(err))
	s.Equal(1, m.CurrentDepth())
}

func (s *ManagerTestSuite) TestStartPlacesStairsAndPlayer() {
	m := s.start(nil)

	level := m.CurrentLevel()
	s.Require().NotNil(level)
	s.Equal(1, m.CurrentDepth())
	s.Equal(1, m.PersonalBest())
	s.Equal([]int{1}, m.CachedDepths())
	s.Same(level.Map, m.CurrentMap())

	s.Nil(level.UpStairs, "first level has no way up")
	s.Require().NotNil(level.DownStairs)
	s.NotEqual(level.Spawn, *level.DownStairs)
	s.True(level.Map.IsWalkable(level.Spawn))
	s.True(level.Map.IsWalkable(*level.DownStairs))

	path, ok := level.Route(level.Spawn, *level.DownStairs)
	s.True(ok, "down staircase must be reachable from the spawn")
	s.NotEmpty(path)

	s.Equal(level.Spawn, s.playerAt())
	s.True(level.Explored.IsExplored(level.Spawn))

	stairs := s.world.NonPlayer()
	s.Require().Len(stairs, 1)
	s.Equal('>', stairs[0].Components.Renderable.Glyph)
	s.Equal(2, stairs[0].Components.Staircase.TargetDepth)
}

func (s *ManagerTestSuite) TestCanTransition() {
	m := s.start(nil)
	level := m.CurrentLevel()

	s.False(m.CanTransition(s.playerID, entities.Down), "spawn is not on a staircase")

	s.Require().NoError(s.world.SetPosition(s.playerID, *level.DownStairs))
	s.True(m.CanTransition(s.playerID, entities.Down))
	s.False(m.CanTransition(s.playerID, entities.Up))
	s.False(m.CanTransition("nobody", entities.Down))

	s.descend(m)
	s.True(m.CanTransition(s.playerID, entities.Up), "arrival is the up staircase")
	s.False(m.CanTransition(s.playerID, entities.Down))
}

func (s *ManagerTestSuite) TestDescendThreeTimesSetsRecords() {
	m := s.start(nil)

	for want := 2; want <= 4; want++ {
		result := s.descend(m)
		s.True(result.Success)
		s.Equal(dungeon.OutcomeDescended, result.Outcome)
		s.Equal(want, result.NewDepth)
		s.Equal(want-1, result.PreviousDepth)
		s.True(result.NewRecord)
		s.True(result.FreshLevel)
		s.False(result.Victory)
		s.Equal(fmt.Sprintf("Descending to Level %d...", want), result.Message)

		level := m.CurrentLevel()
		s.Require().NotNil(level.UpStairs)
		s.Equal(*level.UpStairs, s.playerAt())
	}

	s.Equal(4, m.CurrentDepth())
	s.Equal(4, m.PersonalBest())
	s.Equal([]int{1, 2, 3, 4}, m.CachedDepths())

	s.Equal([]int{1, 2, 3}, s.bus.depths(dungeon.EventLevelCompleted))
	s.Equal([]int{2, 3, 4}, s.bus.depths(dungeon.EventDepthRecord))
	s.Equal([]int{2, 3, 4}, s.bus.depths(dungeon.EventLevelEntered))

	out, err := s.progress.Get(s.ctx, &progress.GetInput{PlayerID: testutils.TestPlayerName})
	s.Require().NoError(err)
	s.Equal(4, out.Progress.PersonalBest)
}

func (s *ManagerTestSuite) TestRedescendIsNotARecord() {
	m := s.start(nil)
	s.descend(m)
	s.descend(m)
	s.Equal(dungeon.OutcomeAscended, s.ascend(m).Outcome)

	result := s.descend(m)
	s.Equal(3, result.NewDepth)
	s.False(result.NewRecord)
	s.False(result.FreshLevel)
	s.Equal(3, m.PersonalBest())
}

func (s *ManagerTestSuite) TestRoundTripRestoresSurvivorsOnly() {
	m := s.start(nil)
	for range 4 {
		s.descend(m)
	}
	s.Require().Equal(5, m.CurrentDepth())

	level := m.CurrentLevel()
	spots := level.Map.WalkablePoints()
	for i, hp := range []int{10, 0, 7} {
		s.world.Spawn(builders.NewEnemyBuilder().
			At(spots[i]).
			WithHealth(hp, 10).
			Build())
	}
	before := len(s.world.NonPlayer())
	s.Equal(5, before, "two staircases and three goblins")

	s.descend(m)
	s.Equal(6, m.CurrentDepth())
	s.Len(s.world.NonPlayer(), 2, "only the staircases of the new level")

	result := s.ascend(m)
	s.True(result.Success)
	s.Equal(dungeon.OutcomeAscended, result.Outcome)
	s.Equal("Ascending to Level 5...", result.Message)
	s.Equal(5, m.CurrentDepth())
	s.Equal(*level.DownStairs, s.playerAt())

	restored := s.world.NonPlayer()
	s.Len(restored, before-1, "the dead goblin is not restored")

	var goblins []int
	for _, e := range restored {
		if e.Components.Enemy != nil {
			goblins = append(goblins, e.Components.Health.Current)
		}
	}
	s.ElementsMatch([]int{10, 7}, goblins)
	s.Empty(level.Entities, "snapshots are consumed on re-entry")
	s.False(level.LastVisited.IsZero())
}

func (s *ManagerTestSuite) TestAscendFromFirstLevelIsBlocked() {
	m := s.start(nil)
	at := s.playerAt()
	published := len(s.bus.published)

	result := s.ascend(m)
	s.False(result.Success)
	s.Equal(dungeon.OutcomeBlocked, result.Outcome)
	s.Equal("You cannot ascend further.", result.Message)
	s.Equal(1, result.NewDepth)

	s.Equal(1, m.CurrentDepth())
	s.Equal(at, s.playerAt())
	s.Len(s.bus.published, published)
}

func (s *ManagerTestSuite) TestVictoryDoesNotMove() {
	m := s.start(func(c *dungeon.Config) { c.VictoryDepth = 3 })
	s.descend(m)
	s.descend(m)
	s.Require().Equal(3, m.CurrentDepth())
	s.True(m.IsVictoryDepth(3))
	s.False(m.IsVictoryDepth(2))
	s.Nil(m.CurrentLevel().DownStairs, "victory level has no way down")

	cached := m.CachedDepths()
	for range 2 {
		result := s.descend(m)
		s.True(result.Success)
		s.True(result.Victory)
		s.Equal(dungeon.OutcomeVictory, result.Outcome)
		s.Equal("You have reached the Victory Chamber!", result.Message)
		s.Equal(3, result.NewDepth)
		s.False(result.NewRecord)
	}

	s.Equal(3, m.CurrentDepth())
	s.Equal(cached, m.CachedDepths())
	s.Equal([]int{3, 3}, s.bus.depths(dungeon.EventCompleted))

	out, err := s.progress.Get(s.ctx, &progress.GetInput{PlayerID: testutils.TestPlayerName})
	s.Require().NoError(err)
	s.Equal(2, out.Progress.Victories)
}

func (s *ManagerTestSuite) TestEndlessModeContinuesPastVictoryDepth() {
	m := s.start(func(c *dungeon.Config) {
		c.VictoryDepth = 2
		c.Endless = true
	})
	s.descend(m)
	s.NotNil(m.CurrentLevel().DownStairs)
	s.False(m.IsVictoryDepth(2))

	result := s.descend(m)
	s.Equal(dungeon.OutcomeDescended, result.Outcome)
	s.Equal(3, m.CurrentDepth())
	s.Empty(s.bus.depths(dungeon.EventCompleted))
}

func (s *ManagerTestSuite) TestCacheKeepsCapacityAroundCurrentDepth() {
	m := s.start(nil)

	var evicted []int
	for range 12 {
		evicted = append(evicted, s.descend(m).Evicted...)
	}

	s.Equal(13, m.CurrentDepth())
	s.Equal(10, m.CachedLevelCount())
	s.True(m.IsLevelCached(13))
	s.Equal([]int{4, 5, 6, 7, 8, 9, 10, 11, 12, 13}, m.CachedDepths())
	s.Equal([]int{1, 2, 3}, evicted)
	s.False(m.IsLevelCached(1))
}

func (s *ManagerTestSuite) TestAscendIntoEvictedLevel() {
	m := s.start(func(c *dungeon.Config) { c.CacheCapacity = 1 })
	result := s.descend(m)
	s.Equal([]int{1}, result.Evicted)
	s.Equal([]int{2}, m.CachedDepths())

	at := s.playerAt()
	entitiesBefore := len(s.world.NonPlayer())

	result = s.ascend(m)
	s.False(result.Success)
	s.Equal(dungeon.OutcomeCacheInconsistent, result.Outcome)
	s.Equal(2, result.NewDepth)

	s.Equal(2, m.CurrentDepth())
	s.Equal(at, s.playerAt())
	s.Len(s.world.NonPlayer(), entitiesBefore)
}

func (s *ManagerTestSuite) TestRestartClearsPreviousRun() {
	m := s.start(nil)
	s.descend(m)
	s.descend(m)
	s.world.Spawn(builders.NewEnemyBuilder().At(m.CurrentLevel().Spawn).Build())
	s.Require().Len(s.world.NonPlayer(), 3, "two staircases and a goblin")

	_, err := m.InitializeFirst(s.ctx, &dungeon.InitializeFirstInput{
		Layout:   builders.NewLevelBuilder().Layout(),
		PlayerID: "nobody",
	})
	s.True(errors.IsNotFound(err))
	s.Equal(3, m.CurrentDepth(), "an unknown player changes nothing")
	s.Len(s.world.NonPlayer(), 3)

	_, err = m.Start(s.ctx, &dungeon.StartInput{PlayerID: s.playerID})
	s.Require().NoError(err)

	s.Equal(1, m.CurrentDepth())
	s.Equal(3, m.PersonalBest(), "stored best survives the restart")
	s.Equal([]int{1}, m.CachedDepths())

	level := m.CurrentLevel()
	remaining := s.world.NonPlayer()
	s.Require().Len(remaining, 1, "only the new down staircase")
	s.NotNil(remaining[0].Components.Staircase)
	s.Equal(*level.DownStairs, *remaining[0].Components.Position)
	s.Equal(level.Arrival(), s.playerAt())
}

func (s *ManagerTestSuite) TestClearCacheKeepsActiveLevel() {
	m := s.start(nil)
	s.descend(m)
	s.descend(m)

	m.ClearCache()
	s.Equal([]int{3}, m.CachedDepths())
	s.NotNil(m.CurrentLevel())
}

func (s *ManagerTestSuite) TestFogOfWarPersistsPerLevel() {
	m := s.start(nil)
	first := m.CurrentLevel()
	seen := first.Explored.Count()
	s.Positive(seen)

	s.descend(m)
	s.NotSame(first, m.CurrentLevel())
	s.ascend(m)

	s.Same(first, m.CurrentLevel())
	s.GreaterOrEqual(first.Explored.Count(), seen)

	visible, err := m.Observe(s.playerID)
	s.Require().NoError(err)
	s.Contains(visible, s.playerAt())

	_, err = m.Observe("nobody")
	s.True(errors.IsNotFound(err))
}

func (s *ManagerTestSuite) TestEventPublishFailureIsNotFatal() {
	s.bus.err = errors.Unavailable("bus down")
	m := s.start(nil)

	result := s.descend(m)
	s.True(result.Success)
	s.Equal(2, m.CurrentDepth())
}

// ManagerMocksTestSuite drives the manager through mocked collaborators
type ManagerMocksTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	generator *mapgenmock.MockGenerator
	progress  *progressmock.MockRepository
	populator *dungeonmock.MockPopulator
	world     *entities.MemoryWorld
	bus       *recordingBus
	manager   *dungeon.Manager
	playerID  string
}

func TestManagerMocksSuite(t *testing.T) {
	suite.Run(t, new(ManagerMocksTestSuite))
}

func (s *ManagerMocksTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.generator = mapgenmock.NewMockGenerator(s.ctrl)
	s.progress = progressmock.NewMockRepository(s.ctrl)
	s.populator = dungeonmock.NewMockPopulator(s.ctrl)
	s.world = entities.NewMemoryWorld(nil)
	s.bus = &recordingBus{}

	s.playerID = testutils.SpawnTestPlayer(s.world).ID

	m, err := dungeon.New(&dungeon.Config{
		Generator: s.generator,
		World:     s.world,
		Roller:    roller.NewSeeded(7),
		Progress:  s.progress,
		EventBus:  s.bus,
		Populator: s.populator,
		Width:     20,
		Height:    12,
	})
	s.Require().NoError(err)
	s.manager = m
}

func (s *ManagerMocksTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ManagerMocksTestSuite) initialize(best int) {
	if best > 0 {
		mocks.ExpectStoredBest(s.ctx, s.progress, testutils.TestPlayerName, best)
	} else {
		mocks.ExpectNoProgress(s.ctx, s.progress, testutils.TestPlayerName)
	}
	s.populator.EXPECT().
		Populate(s.ctx, gomock.Any()).
		Return(&dungeon.PopulateOutput{Enemies: 1}, nil)

	out, err := s.manager.InitializeFirst(s.ctx, &dungeon.InitializeFirstInput{
		Layout:   builders.NewLevelBuilder().Layout(),
		PlayerID: s.playerID,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Level)
}

func (s *ManagerMocksTestSuite) TestInitializeFirstRequiresLayout() {
	_, err := s.manager.InitializeFirst(s.ctx, &dungeon.InitializeFirstInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ManagerMocksTestSuite) TestStoredPersonalBestIsLoaded() {
	s.initialize(7)
	s.Equal(7, s.manager.PersonalBest())

	s.generator.EXPECT().
		Generate(s.ctx, &mapgen.GenerateInput{Depth: 2, Width: 20, Height: 12, Algorithm: mapgen.AlgorithmRooms}).
		Return(&mapgen.GenerateOutput{Layout: builders.NewLevelBuilder().Layout(), Attempts: 1}, nil)
	s.populator.EXPECT().
		Populate(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *dungeon.PopulateInput) (*dungeon.PopulateOutput, error) {
			s.Equal(2, input.Level.Depth)
			return &dungeon.PopulateOutput{}, nil
		})

	result, err := s.manager.Descend(s.ctx, &dungeon.TransitionInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.True(result.Success)
	s.False(result.NewRecord, "depth 2 does not beat a stored best of 7")
	s.Empty(s.bus.depths(dungeon.EventDepthRecord))
}

func (s *ManagerMocksTestSuite) TestProgressFailureDoesNotFailDescend() {
	s.initialize(0)

	mocks.ExpectGenerate(s.ctx, s.generator, builders.NewLevelBuilder().Layout())
	s.progress.EXPECT().
		RecordDepth(s.ctx, &progress.RecordDepthInput{PlayerID: testutils.TestPlayerName, Depth: 2}).
		Return(nil, errors.Unavailable("redis down"))
	s.populator.EXPECT().
		Populate(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("bestiary empty"))

	result, err := s.manager.Descend(s.ctx, &dungeon.TransitionInput{PlayerID: s.playerID})
	s.Require().NoError(err)
	s.True(result.Success)
	s.True(result.NewRecord)
	s.Equal(2, s.manager.PersonalBest())
}

func (s *ManagerMocksTestSuite) TestGenerationFailureLeavesStateUntouched() {
	s.initialize(0)
	at := *s.world.NonPlayer()[0].Components.Position
	player, _ := s.world.Get(s.playerID)
	playerAt := *player.Components.Position
	published := len(s.bus.published)

	s.generator.EXPECT().
		Generate(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("all attempts degenerate").
			WithReason(errors.ReasonGenerationDegenerate))

	result, err := s.manager.Descend(s.ctx, &dungeon.TransitionInput{PlayerID: s.playerID})
	s.Require().Error(err)
	s.Nil(result)
	s.True(errors.IsGenerationDegenerate(err))

	s.Equal(1, s.manager.CurrentDepth())
	s.Equal([]int{1}, s.manager.CachedDepths())
	s.Require().Len(s.world.NonPlayer(), 1)
	s.Equal(at, *s.world.NonPlayer()[0].Components.Position)
	player, _ = s.world.Get(s.playerID)
	s.Equal(playerAt, *player.Components.Position)
	s.Len(s.bus.published, published)
}

func (s *ManagerMocksTestSuite) TestPopulatesFreshLevelsOnly() {
	s.initialize(0)

	mocks.ExpectGenerate(s.ctx, s.generator, builders.NewLevelBuilder().Layout()).Times(1)
	mocks.ExpectRecordDepth(s.ctx, s.progress, testutils.TestPlayerName).Times(1)
	s.populator.EXPECT().
		Populate(s.ctx, gomock.Any()).
		Return(&dungeon.PopulateOutput{Enemies: 2, Items: 1}, nil).
		Times(1)

	input := &dungeon.TransitionInput{PlayerID: s.playerID}
	first, err := s.manager.Descend(s.ctx, input)
	s.Require().NoError(err)
	s.True(first.FreshLevel)

	_, err = s.manager.Ascend(s.ctx, input)
	s.Require().NoError(err)

	again, err := s.manager.Descend(s.ctx, input)
	s.Require().NoError(err)
	s.False(again.FreshLevel)
	s.Equal(2, s.manager.CurrentDepth())
}

func (s *ManagerMocksTestSuite) TestArenaStairsAreDistinctAndReachable() {
	s.initialize(0)

	mocks.ExpectGenerate(s.ctx, s.generator, builders.NewLevelBuilder().Layout())
	mocks.ExpectRecordDepth(s.ctx, s.progress, testutils.TestPlayerName)
	s.populator.EXPECT().Populate(s.ctx, gomock.Any()).Return(&dungeon.PopulateOutput{}, nil)

	_, err := s.manager.Descend(s.ctx, &dungeon.TransitionInput{PlayerID: s.playerID})
	s.Require().NoError(err)

	level := s.manager.CurrentLevel()
	s.Require().NotNil(level.UpStairs)
	s.Require().NotNil(level.DownStairs)
	s.NotEqual(*level.UpStairs, *level.DownStairs)

	_, ok := level.Route(*level.UpStairs, *level.DownStairs)
	s.True(ok)
}
