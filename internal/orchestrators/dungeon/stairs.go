package dungeon

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/pathing"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/roller"
)

// stairPlan is where the two staircases of a level could go. The arrival
// point doubles as the spawn on levels with no way up.
type stairPlan struct {
	arrival grid.Point
	exit    grid.Point
}

// planStairs picks staircase tiles. Room layouts use the first room for the
// way up and the room farthest from it for the way down. Other layouts pick
// a random walkable tile and the farthest tile reachable from it.
func planStairs(level *Level, r dice.Roller) (stairPlan, error) {
	if len(level.Rooms) >= 2 {
		first := level.Rooms[0].Center()
		far, best := first, -1
		for _, room := range level.Rooms[1:] {
			c := room.Center()
			if d := pathing.Distance(first, c); d > best {
				far, best = c, d
			}
		}
		if far != first {
			return stairPlan{arrival: first, exit: far}, nil
		}
	}

	walkable := level.Map.WalkablePoints()
	if len(walkable) < 2 {
		return stairPlan{}, errors.FailedPreconditionf("level %d has %d walkable tiles", level.Depth, len(walkable)).
			WithReason(errors.ReasonGenerationDegenerate)
	}

	i, err := roller.Intn(r, len(walkable))
	if err != nil {
		return stairPlan{}, errors.Wrap(err, "failed to pick arrival tile")
	}
	arrival := walkable[i]

	exit, best := arrival, -1
	reachable := pathing.Reachable(level.Map, arrival)
	for _, p := range walkable {
		if p == arrival || !reachable.Has(p) {
			continue
		}
		if d := pathing.Distance(arrival, p); d > best {
			exit, best = p, d
		}
	}
	if best < 0 {
		// arrival sits in a pocket of its own, fall back to any other tile
		j, err := roller.Intn(r, len(walkable)-1)
		if err != nil {
			return stairPlan{}, errors.Wrap(err, "failed to pick exit tile")
		}
		if j >= i {
			j++
		}
		exit = walkable[j]
	}

	return stairPlan{arrival: arrival, exit: exit}, nil
}

// placeStairs records the planned staircases on the level. The first level
// has no way up and the victory level has no way down unless the dungeon is
// endless.
func (m *Manager) placeStairs(level *Level) error {
	plan, err := planStairs(level, m.roller)
	if err != nil {
		return err
	}

	level.Spawn = plan.arrival
	level.UpStairs = nil
	level.DownStairs = nil
	if level.Depth > 1 {
		level.UpStairs = entities.At(plan.arrival)
	}
	if m.endless || level.Depth < m.victoryDepth {
		level.DownStairs = entities.At(plan.exit)
	}
	return nil
}

// spawnStairs adds the staircase entities of a freshly generated level to
// the world
func (m *Manager) spawnStairs(level *Level) {
	if level.UpStairs != nil {
		m.world.Spawn(stairComponents(*level.UpStairs, entities.Up, level.Depth-1))
	}
	if level.DownStairs != nil {
		m.world.Spawn(stairComponents(*level.DownStairs, entities.Down, level.Depth+1))
	}
}

func stairComponents(at grid.Point, dir entities.Direction, target int) entities.Components {
	name := "Stairs Down"
	if dir == entities.Up {
		name = "Stairs Up"
	}
	return entities.Components{
		Name:       name,
		Position:   entities.At(at),
		Staircase:  &entities.Staircase{Direction: dir, TargetDepth: target},
		Renderable: &entities.Renderable{Glyph: dir.Glyph(), Color: "white"},
	}
}
