package dungeon

import (
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/exploration"
	"github.com/KirkDiggler/rpg-dungeon/internal/fov"
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/pathing"
)

// Level is one generated depth of the dungeon together with everything that
// must survive leaving and re-entering it
type Level struct {
	Depth     int
	Map       *grid.Field
	Rooms     []grid.Rect
	Algorithm mapgen.Algorithm

	// UpStairs is nil on the first level and DownStairs is nil on the
	// victory level unless the dungeon is endless
	UpStairs   *grid.Point
	DownStairs *grid.Point

	// Spawn is where the player arrives when the level has no up staircase
	Spawn grid.Point

	// Entities holds the non-player entities captured when the level was
	// last vacated. It is emptied again when the level is re-entered.
	Entities []entities.Snapshot

	LastVisited time.Time
	Explored    *exploration.Tracker
	View        *fov.Engine
	Paths       *pathing.AStar
}

func newLevel(depth int, layout *mapgen.Layout) *Level {
	m := layout.Map
	return &Level{
		Depth:     depth,
		Map:       m,
		Rooms:     layout.Rooms,
		Algorithm: layout.Algorithm,
		Explored:  exploration.New(m.Width(), m.Height()),
		View:      fov.NewEngine(),
		Paths:     pathing.NewAStar(m.Width(), m.Height()),
	}
}

// Arrival is where the player lands when coming down into the level
func (l *Level) Arrival() grid.Point {
	if l.UpStairs != nil {
		return *l.UpStairs
	}
	return l.Spawn
}

// Return is where the player lands when coming back up into the level
func (l *Level) Return() grid.Point {
	if l.DownStairs != nil {
		return *l.DownStairs
	}
	return l.Arrival()
}

// Route finds a path on this level using its own search buffers
func (l *Level) Route(from, to grid.Point) (pathing.Path, bool) {
	return l.Paths.ShortestPath(l.Map, from, to)
}

// Observe recomputes what is visible from origin and adds it to the
// explored tiles of the level
func (l *Level) Observe(origin grid.Point, radius int) []grid.Point {
	l.View.Calculate(l.Map, origin, radius)
	visible := l.View.VisiblePoints()
	l.Explored.ExploreAll(visible)
	return visible
}

// Outcome names what a transition request did
type Outcome string

const (
	OutcomeDescended         Outcome = "descended"
	OutcomeAscended          Outcome = "ascended"
	OutcomeVictory           Outcome = "victory"
	OutcomeBlocked           Outcome = "blocked"
	OutcomeCacheInconsistent Outcome = "cache_inconsistent"
)

// TransitionResult reports the result of Descend or Ascend. Blocked and
// cache-inconsistent requests leave the dungeon untouched.
type TransitionResult struct {
	Success       bool
	Outcome       Outcome
	Message       string
	PreviousDepth int
	NewDepth      int
	NewRecord     bool
	Victory       bool

	// FreshLevel is true when the new level was generated by this
	// transition and still needs populating
	FreshLevel bool

	// Evicted lists the depths dropped from the cache by this transition
	Evicted []int
}
