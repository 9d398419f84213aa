// Package pathing finds shortest 8-connected routes across a level with A*
// and answers reachability queries used to validate generated maps.
package pathing

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
)

// WalkabilityMap is the read side of a level needed for movement
type WalkabilityMap interface {
	Width() int
	Height() int
	IsWalkable(p grid.Point) bool
}

// Path is an ordered list of tiles from start to goal, both inclusive
type Path []grid.Point

// Len returns the number of moves along the path
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Distance is the Chebyshev distance between two tiles, the number of moves
// an 8-connected walker needs on an open floor
func Distance(a, b grid.Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type node struct {
	p grid.Point
	g int
	h int
}

func (n node) f() int { return n.g + n.h }

// before orders the open set by f, then h, then y, then x so that equal-cost
// routes resolve the same way on every run
func before(a, b node) bool {
	if a.f() != b.f() {
		return a.f() < b.f()
	}
	if a.h != b.h {
		return a.h < b.h
	}
	if a.p.Y != b.p.Y {
		return a.p.Y < b.p.Y
	}
	return a.p.X < b.p.X
}

// AStar owns the per-tile scratch buffers reused across searches. The zero
// value is ready to use. It is not safe for concurrent use.
type AStar struct {
	width  int
	height int
	stamp  uint32
	seen   []uint32
	closed []uint32
	g      []int
	parent []int
}

// NewAStar creates a search sized for a width x height map. Buffers grow on
// demand if a larger map is searched later.
func NewAStar(width, height int) *AStar {
	a := &AStar{}
	a.prepare(width, height)
	return a
}

func (a *AStar) prepare(width, height int) {
	if width != a.width || height != a.height {
		n := width * height
		a.width, a.height = width, height
		a.seen = make([]uint32, n)
		a.closed = make([]uint32, n)
		a.g = make([]int, n)
		a.parent = make([]int, n)
		a.stamp = 0
	}
	a.stamp++
	if a.stamp == 0 {
		clear(a.seen)
		clear(a.closed)
		a.stamp = 1
	}
}

func (a *AStar) index(p grid.Point) int {
	return p.Y*a.width + p.X
}

// ShortestPath returns the cheapest 8-connected path from start to goal with
// unit cost per move. It reports false when either end is not walkable or
// the goal cannot be reached.
func (a *AStar) ShortestPath(m WalkabilityMap, start, goal grid.Point) (Path, bool) {
	if !m.IsWalkable(start) || !m.IsWalkable(goal) {
		return nil, false
	}
	if start == goal {
		return Path{start}, true
	}

	a.prepare(m.Width(), m.Height())

	open := heap.New[node](before)
	si := a.index(start)
	a.seen[si] = a.stamp
	a.g[si] = 0
	a.parent[si] = -1
	open.Push(node{p: start, g: 0, h: Distance(start, goal)})

	for open.Size() > 0 {
		cur, _ := open.Pop()
		ci := a.index(cur.p)
		if a.closed[ci] == a.stamp {
			continue
		}
		a.closed[ci] = a.stamp

		if cur.p == goal {
			return a.reconstruct(goal), true
		}

		for _, d := range grid.Directions {
			next := cur.p.Add(d)
			if !m.IsWalkable(next) {
				continue
			}
			ni := a.index(next)
			if a.closed[ni] == a.stamp {
				continue
			}
			g := cur.g + 1
			if a.seen[ni] == a.stamp && g >= a.g[ni] {
				continue
			}
			a.seen[ni] = a.stamp
			a.g[ni] = g
			a.parent[ni] = ci
			open.Push(node{p: next, g: g, h: Distance(next, goal)})
		}
	}

	return nil, false
}

func (a *AStar) reconstruct(goal grid.Point) Path {
	var reversed Path
	for i := a.index(goal); i != -1; i = a.parent[i] {
		reversed = append(reversed, grid.Point{X: i % a.width, Y: i / a.width})
	}
	path := make(Path, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path
}

// Reachable returns every walkable tile connected to from, including from.
// A non-walkable origin yields an empty set.
func Reachable(m WalkabilityMap, from grid.Point) mapset.Set[grid.Point] {
	reached := mapset.New[grid.Point]()
	if !m.IsWalkable(from) {
		return reached
	}

	frontier := queue.New[grid.Point]()
	frontier.Enqueue(from)
	reached.Put(from)

	for !frontier.Empty() {
		cur := frontier.Dequeue()
		for _, d := range grid.Directions {
			next := cur.Add(d)
			if !m.IsWalkable(next) || reached.Has(next) {
				continue
			}
			reached.Put(next)
			frontier.Enqueue(next)
		}
	}

	return reached
}
