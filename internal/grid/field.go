package grid

import (
	"iter"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Field stores walkability and transparency for every tile of a level.
// Reads outside the bounds report non-walkable and opaque; writes outside the
// bounds are ignored.
type Field struct {
	width       int
	height      int
	walkable    []bool
	transparent []bool
}

// New creates a width x height field with every tile blocked and opaque
func New(width, height int) (*Field, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("width", width, vb)
	errors.ValidatePositive("height", height, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &Field{
		width:       width,
		height:      height,
		walkable:    make([]bool, width*height),
		transparent: make([]bool, width*height),
	}, nil
}

// MustNew is New for dimensions known to be valid
func MustNew(width, height int) *Field {
	f, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return f
}

// Width returns the number of columns
func (f *Field) Width() int { return f.width }

// Height returns the number of rows
func (f *Field) Height() int { return f.height }

// InBounds reports whether p is a tile of the field
func (f *Field) InBounds(p Point) bool {
	return p.X >= 0 && p.X < f.width && p.Y >= 0 && p.Y < f.height
}

func (f *Field) index(p Point) int {
	return p.Y*f.width + p.X
}

// IsWalkable reports whether an actor may stand on p
func (f *Field) IsWalkable(p Point) bool {
	return f.InBounds(p) && f.walkable[f.index(p)]
}

// IsTransparent reports whether light passes through p
func (f *Field) IsTransparent(p Point) bool {
	return f.InBounds(p) && f.transparent[f.index(p)]
}

// SetWalkable sets the walkable flag of p
func (f *Field) SetWalkable(p Point, walkable bool) {
	if f.InBounds(p) {
		f.walkable[f.index(p)] = walkable
	}
}

// SetTransparent sets the transparent flag of p
func (f *Field) SetTransparent(p Point, transparent bool) {
	if f.InBounds(p) {
		f.transparent[f.index(p)] = transparent
	}
}

// SetFloor makes p walkable and transparent
func (f *Field) SetFloor(p Point) {
	f.SetWalkable(p, true)
	f.SetTransparent(p, true)
}

// SetWall makes p blocked and opaque
func (f *Field) SetWall(p Point) {
	f.SetWalkable(p, false)
	f.SetTransparent(p, false)
}

// FillFloor turns every tile into floor
func (f *Field) FillFloor() {
	for i := range f.walkable {
		f.walkable[i] = true
		f.transparent[i] = true
	}
}

// PerimeterWalls turns the outermost ring of tiles into walls
func (f *Field) PerimeterWalls() {
	for x := 0; x < f.width; x++ {
		f.SetWall(Point{X: x, Y: 0})
		f.SetWall(Point{X: x, Y: f.height - 1})
	}
	for y := 0; y < f.height; y++ {
		f.SetWall(Point{X: 0, Y: y})
		f.SetWall(Point{X: f.width - 1, Y: y})
	}
}

// Neighbors8 yields the walkable 8-connected neighbours of p in Directions
// order. Diagonal moves are not blocked by adjacent walls.
func (f *Field) Neighbors8(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range Directions {
			n := p.Add(d)
			if !f.IsWalkable(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// WalkableCount returns the number of walkable tiles
func (f *Field) WalkableCount() int {
	count := 0
	for _, w := range f.walkable {
		if w {
			count++
		}
	}
	return count
}

// WalkablePoints returns every walkable tile in row-major order
func (f *Field) WalkablePoints() []Point {
	points := make([]Point, 0, f.WalkableCount())
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			p := Point{X: x, Y: y}
			if f.walkable[f.index(p)] {
				points = append(points, p)
			}
		}
	}
	return points
}

// Clone returns an independent copy of the field
func (f *Field) Clone() *Field {
	c := &Field{
		width:       f.width,
		height:      f.height,
		walkable:    make([]bool, len(f.walkable)),
		transparent: make([]bool, len(f.transparent)),
	}
	copy(c.walkable, f.walkable)
	copy(c.transparent, f.transparent)
	return c
}
