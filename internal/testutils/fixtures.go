package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
)

// TestPlayerName is the player name used by fixtures and as the progress key
const TestPlayerName = "Hero"

// TestTime is a fixed instant for clocks in tests
var TestTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// SpawnTestPlayer adds a player at the origin of w
func SpawnTestPlayer(w entities.World) *entities.Entity {
	return w.Spawn(entities.Components{
		Name:           TestPlayerName,
		Position:       entities.At(grid.Point{}),
		Health:         &entities.Health{Current: 30, Maximum: 30},
		Combat:         &entities.Combat{Attack: 5, Defense: 2},
		Renderable:     &entities.Renderable{Glyph: '@', Color: "yellow"},
		Player:         &entities.Player{Name: TestPlayerName},
		BlocksMovement: true,
	})
}
