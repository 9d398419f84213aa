// Package builders provides test data builders for levels and entities
package builders

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/exploration"
	"github.com/KirkDiggler/rpg-dungeon/internal/fov"
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/pathing"
)

// LevelBuilder provides a fluent interface for building walled arena levels
type LevelBuilder struct {
	depth  int
	width  int
	height int
	walls  []grid.Point
	spawn  grid.Point
	up     *grid.Point
	down   *grid.Point
}

// NewLevelBuilder creates a 20x12 arena at depth 1 with the spawn in the
// top left corner of the floor
func NewLevelBuilder() *LevelBuilder {
	return &LevelBuilder{
		depth:  1,
		width:  20,
		height: 12,
		spawn:  grid.Point{X: 1, Y: 1},
	}
}

// WithDepth sets the depth
func (b *LevelBuilder) WithDepth(depth int) *LevelBuilder {
	b.depth = depth
	return b
}

// WithSize sets the map size including the perimeter walls
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width, b.height = width, height
	return b
}

// WithWall adds an interior wall tile
func (b *LevelBuilder) WithWall(p grid.Point) *LevelBuilder {
	b.walls = append(b.walls, p)
	return b
}

// WithSpawn sets the spawn point
func (b *LevelBuilder) WithSpawn(p grid.Point) *LevelBuilder {
	b.spawn = p
	return b
}

// WithUpStairs places the up staircase
func (b *LevelBuilder) WithUpStairs(p grid.Point) *LevelBuilder {
	b.up = entities.At(p)
	return b
}

// WithDownStairs places the down staircase
func (b *LevelBuilder) WithDownStairs(p grid.Point) *LevelBuilder {
	b.down = entities.At(p)
	return b
}

// WithCornerStairs puts the up staircase on the spawn and the down
// staircase in the opposite floor corner
func (b *LevelBuilder) WithCornerStairs() *LevelBuilder {
	return b.WithUpStairs(b.spawn).WithDownStairs(grid.Point{X: b.width - 2, Y: b.height - 2})
}

// Field builds just the map
func (b *LevelBuilder) Field() *grid.Field {
	f := grid.MustNew(b.width, b.height)
	f.FillFloor()
	f.PerimeterWalls()
	for _, p := range b.walls {
		f.SetWall(p)
	}
	return f
}

// Layout builds a generator result holding the map
func (b *LevelBuilder) Layout() *mapgen.Layout {
	return &mapgen.Layout{Map: b.Field(), Algorithm: mapgen.AlgorithmSimple}
}

// Build returns the level
func (b *LevelBuilder) Build() *dungeon.Level {
	return &dungeon.Level{
		Depth:      b.depth,
		Map:        b.Field(),
		Algorithm:  mapgen.AlgorithmSimple,
		Spawn:      b.spawn,
		UpStairs:   b.up,
		DownStairs: b.down,
		Explored:   exploration.New(b.width, b.height),
		View:       fov.NewEngine(),
		Paths:      pathing.NewAStar(b.width, b.height),
	}
}
