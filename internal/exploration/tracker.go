// Package exploration remembers which tiles of a level the player has seen
package exploration

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
)

// Tracker holds one explored flag per tile. Flags only ever turn on until
// Clear is called. Points outside the bounds are ignored.
type Tracker struct {
	width    int
	height   int
	explored []bool
	count    int
}

// New creates a tracker for a width x height level with nothing explored
func New(width, height int) *Tracker {
	width, height = max(width, 0), max(height, 0)
	return &Tracker{
		width:    width,
		height:   height,
		explored: make([]bool, width*height),
	}
}

func (t *Tracker) inBounds(p grid.Point) bool {
	return p.X >= 0 && p.X < t.width && p.Y >= 0 && p.Y < t.height
}

// Explore marks p as explored
func (t *Tracker) Explore(p grid.Point) {
	if !t.inBounds(p) {
		return
	}
	i := p.Y*t.width + p.X
	if !t.explored[i] {
		t.explored[i] = true
		t.count++
	}
}

// ExploreAll marks every point as explored, typically the output of a
// visibility calculation
func (t *Tracker) ExploreAll(points []grid.Point) {
	for _, p := range points {
		t.Explore(p)
	}
}

// IsExplored reports whether p has been seen
func (t *Tracker) IsExplored(p grid.Point) bool {
	return t.inBounds(p) && t.explored[p.Y*t.width+p.X]
}

// Count returns the number of explored tiles
func (t *Tracker) Count() int {
	return t.count
}

// Clear forgets everything
func (t *Tracker) Clear() {
	clear(t.explored)
	t.count = 0
}
