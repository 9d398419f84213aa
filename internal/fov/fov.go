// Package fov computes which tiles are visible from a point using recursive
// shadowcasting over the eight octants around the origin.
package fov

import (
	"cmp"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
)

// TransparencyMap is the read side of a level needed for line of sight.
// Points outside the map must report false from both methods.
type TransparencyMap interface {
	InBounds(p grid.Point) bool
	IsTransparent(p grid.Point) bool
}

// octants maps the scan coordinates of castLight onto each of the eight
// octants as {xx, xy, yx, yy}
var octants = [8][4]int{
	{1, 0, 0, -1},
	{0, 1, -1, 0},
	{0, -1, -1, 0},
	{-1, 0, 0, -1},
	{-1, 0, 0, 1},
	{0, -1, 1, 0},
	{0, 1, 1, 0},
	{1, 0, 0, 1},
}

// Engine holds the result of the last Calculate. Each call replaces the
// previous visible set. An Engine is not safe for concurrent use.
type Engine struct {
	visible mapset.Set[grid.Point]
}

// NewEngine creates an engine with nothing visible
func NewEngine() *Engine {
	return &Engine{visible: mapset.New[grid.Point]()}
}

// Calculate recomputes the visible set for an observer at origin. A tile is
// visible when it lies within the circle of the given radius and an
// unobstructed ray reaches it. Opaque tiles that stop a ray are themselves
// visible. With a positive radius the origin is always lit and light leaves
// it even when it is opaque; with no radius only a transparent origin is.
func (e *Engine) Calculate(m TransparencyMap, origin grid.Point, radius int) {
	e.visible = mapset.New[grid.Point]()

	if !m.InBounds(origin) {
		return
	}
	if radius <= 0 {
		if m.IsTransparent(origin) {
			e.visible.Put(origin)
		}
		return
	}
	e.visible.Put(origin)

	s := &scan{m: m, origin: origin, radius: radius, visible: e.visible}
	for _, o := range octants {
		s.castLight(1, 1.0, 0.0, o[0], o[1], o[2], o[3])
	}
}

// IsVisible reports whether p was visible in the last calculation
func (e *Engine) IsVisible(p grid.Point) bool {
	return e.visible.Has(p)
}

// Count returns the number of visible tiles
func (e *Engine) Count() int {
	return e.visible.Size()
}

// VisiblePoints returns the visible tiles in row-major order
func (e *Engine) VisiblePoints() []grid.Point {
	points := make([]grid.Point, 0, e.visible.Size())
	e.visible.Each(func(p grid.Point) {
		points = append(points, p)
	})
	slices.SortFunc(points, func(a, b grid.Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return points
}

type scan struct {
	m       TransparencyMap
	origin  grid.Point
	radius  int
	visible mapset.Set[grid.Point]
}

// castLight scans rows of one octant outward from row, lighting tiles whose
// slope lies between start and end. An opaque run narrows the light cone for
// the next row and spawns a child scan for the part above it.
func (s *scan) castLight(row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := s.radius * s.radius

	for j := row; j <= s.radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := 0.0

		for dx <= 0 {
			dx++
			p := grid.Point{
				X: s.origin.X + dx*xx + dy*xy,
				Y: s.origin.Y + dx*yx + dy*yy,
			}
			leftSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rightSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rightSlope {
				continue
			}
			if end > leftSlope {
				break
			}

			if dx*dx+dy*dy <= radiusSq && s.m.InBounds(p) {
				s.visible.Put(p)
			}

			opaque := !s.m.IsTransparent(p)
			if blocked {
				if opaque {
					newStart = rightSlope
					continue
				}
				blocked = false
				start = newStart
				continue
			}
			if opaque && j < s.radius {
				blocked = true
				s.castLight(j+1, start, leftSlope, xx, xy, yx, yy)
				newStart = rightSlope
			}
		}

		if blocked {
			return
		}
	}
}
