package mapgen

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/roller"
)

// Rooms makes maxRooms placement attempts. A room that overlaps an accepted
// one, or does not fit inside the outer wall, is discarded.
func (g *generator) Rooms(width, height int) (*Layout, error) {
	field, err := grid.New(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "invalid map size")
	}

	var rooms []grid.Rect
	for i := 0; i < g.maxRooms; i++ {
		room, err := g.randomRoom(width, height)
		if err != nil {
			return nil, err
		}
		if room.MaxX() > width-1 || room.MaxY() > height-1 {
			continue
		}
		if overlapsAny(room, rooms) {
			continue
		}

		carveRoom(field, room)
		if len(rooms) > 0 {
			if err := g.carveCorridor(field, rooms[len(rooms)-1].Center(), room.Center()); err != nil {
				return nil, err
			}
		}
		rooms = append(rooms, room)
	}

	return &Layout{Map: field, Rooms: rooms, Algorithm: AlgorithmRooms}, nil
}

func (g *generator) randomRoom(width, height int) (grid.Rect, error) {
	w, err := roller.Between(g.roller, g.minRoomSize, g.maxRoomSize+1)
	if err != nil {
		return grid.Rect{}, errors.Wrap(err, "failed to roll room width")
	}
	h, err := roller.Between(g.roller, g.minRoomSize, g.maxRoomSize+1)
	if err != nil {
		return grid.Rect{}, errors.Wrap(err, "failed to roll room height")
	}
	x, err := roller.Between(g.roller, 1, width-w-1)
	if err != nil {
		return grid.Rect{}, errors.Wrap(err, "failed to roll room x")
	}
	y, err := roller.Between(g.roller, 1, height-h-1)
	if err != nil {
		return grid.Rect{}, errors.Wrap(err, "failed to roll room y")
	}
	return grid.Rect{X: x, Y: y, Width: w, Height: h}, nil
}

func overlapsAny(room grid.Rect, rooms []grid.Rect) bool {
	for _, r := range rooms {
		if room.Intersects(r) {
			return true
		}
	}
	return false
}

func carveRoom(field *grid.Field, room grid.Rect) {
	for y := room.Y; y < room.MaxY(); y++ {
		for x := room.X; x < room.MaxX(); x++ {
			field.SetFloor(grid.Point{X: x, Y: y})
		}
	}
}

// carveCorridor digs an L-shaped corridor, horizontal leg first or vertical
// leg first with equal chance
func (g *generator) carveCorridor(field *grid.Field, from, to grid.Point) error {
	horizontalFirst, err := roller.Percent(g.roller, 50)
	if err != nil {
		return errors.Wrap(err, "failed to roll corridor orientation")
	}

	cur := from
	if horizontalFirst {
		cur = carveHorizontal(field, cur, to.X)
		cur = carveVertical(field, cur, to.Y)
	} else {
		cur = carveVertical(field, cur, to.Y)
		cur = carveHorizontal(field, cur, to.X)
	}
	field.SetFloor(cur)
	return nil
}

func carveHorizontal(field *grid.Field, cur grid.Point, toX int) grid.Point {
	for cur.X != toX {
		field.SetFloor(cur)
		cur.X += sign(toX - cur.X)
	}
	return cur
}

func carveVertical(field *grid.Field, cur grid.Point, toY int) grid.Point {
	for cur.Y != toY {
		field.SetFloor(cur)
		cur.Y += sign(toY - cur.Y)
	}
	return cur
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Cave seeds walls row by row and then applies the smoothing rule
// caveIterations times. Tiles outside the map count as walls, so the border
// tends to close up.
func (g *generator) Cave(width, height int) (*Layout, error) {
	field, err := grid.New(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "invalid map size")
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			wall, err := roller.Chance(g.roller, g.wallProbability)
			if err != nil {
				return nil, errors.Wrap(err, "failed to roll cave seed")
			}
			if !wall {
				field.SetFloor(grid.Point{X: x, Y: y})
			}
		}
	}

	for i := 0; i < g.caveIterations; i++ {
		field = smooth(field)
	}

	return &Layout{Map: field, Algorithm: AlgorithmCave}, nil
}

// smooth applies one pass of the 5-of-8 rule into a fresh field
func smooth(prev *grid.Field) *grid.Field {
	next := grid.MustNew(prev.Width(), prev.Height())
	for y := 0; y < prev.Height(); y++ {
		for x := 0; x < prev.Width(); x++ {
			p := grid.Point{X: x, Y: y}
			if wallNeighbours(prev, p) < 5 {
				next.SetFloor(p)
			}
		}
	}
	return next
}

func wallNeighbours(field *grid.Field, p grid.Point) int {
	count := 0
	for _, d := range grid.Directions {
		if !field.IsWalkable(p.Add(d)) {
			count++
		}
	}
	return count
}

// Simple fills the map with floor, walls the perimeter and outlines a box
// covering the middle half of the map
func (g *generator) Simple(width, height int) (*Layout, error) {
	field, err := grid.New(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "invalid map size")
	}
	field.FillFloor()
	field.PerimeterWalls()

	box := grid.Rect{X: width / 4, Y: height / 4, Width: width / 2, Height: height / 2}
	for x := box.X; x < box.MaxX(); x++ {
		field.SetWall(grid.Point{X: x, Y: box.Y})
		field.SetWall(grid.Point{X: x, Y: box.MaxY() - 1})
	}
	for y := box.Y; y < box.MaxY(); y++ {
		field.SetWall(grid.Point{X: box.X, Y: y})
		field.SetWall(grid.Point{X: box.MaxX() - 1, Y: y})
	}

	return &Layout{Map: field, Algorithm: AlgorithmSimple}, nil
}
