package main

import (
	"bufio"
	"io"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
)

const (
	glyphWall    = '#'
	glyphFloor   = '.'
	glyphUnknown = ' '
	glyphPlayer  = '@'
)

// renderLevel draws the level as ASCII. With fog set, tiles the player has
// not explored are left blank and entities on them are hidden.
func renderLevel(w io.Writer, level *dungeon.Level, world entities.World, playerID string, fog bool) error {
	m := level.Map
	rows := make([][]rune, m.Height())
	for y := range rows {
		rows[y] = make([]rune, m.Width())
		for x := range rows[y] {
			p := grid.Point{X: x, Y: y}
			switch {
			case fog && !level.Explored.IsExplored(p):
				rows[y][x] = glyphUnknown
			case m.IsWalkable(p):
				rows[y][x] = glyphFloor
			default:
				rows[y][x] = glyphWall
			}
		}
	}

	plot := func(p grid.Point, glyph rune) {
		if !m.InBounds(p) || (fog && !level.Explored.IsExplored(p)) {
			return
		}
		rows[p.Y][p.X] = glyph
	}
	for _, e := range world.NonPlayer() {
		if r := e.Components.Renderable; r != nil {
			plot(*e.Components.Position, r.Glyph)
		}
	}
	if player, ok := world.Get(playerID); ok && player.Components.Position != nil {
		plot(*player.Components.Position, glyphPlayer)
	}

	bw := bufio.NewWriter(w)
	for _, row := range rows {
		if _, err := bw.WriteString(string(row) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
