// Package grid holds the per-tile walkability and transparency of a level
// and the small geometry types shared by generation, visibility and pathing.
package grid

import "fmt"

// Point is a tile coordinate. Y grows downward.
type Point struct {
	X int
	Y int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Directions lists the eight neighbour offsets in the fixed order
// N, NE, E, SE, S, SW, W, NW used by every neighbour walk.
var Directions = [8]Point{
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
}

// Rect is an axis-aligned rectangle of tiles, X/Y being the top-left corner
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// MaxX is the first column past the right edge
func (r Rect) MaxX() int { return r.X + r.Width }

// MaxY is the first row past the bottom edge
func (r Rect) MaxY() int { return r.Y + r.Height }

// Center returns the integer centre of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects reports whether the two rectangles overlap
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.MaxX() && r.MaxX() > o.X && r.Y < o.MaxY() && r.MaxY() > o.Y
}

// Contains reports whether p lies inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}
