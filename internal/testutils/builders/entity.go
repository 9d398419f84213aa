package builders

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
)

// EnemyBuilder provides a fluent interface for building enemy components
type EnemyBuilder struct {
	c entities.Components
}

// NewEnemyBuilder creates a depth 1 goblin at the origin
func NewEnemyBuilder() *EnemyBuilder {
	return &EnemyBuilder{
		c: entities.Components{
			Name:           "Goblin",
			Position:       entities.At(grid.Point{}),
			Health:         &entities.Health{Current: 30, Maximum: 30},
			Combat:         &entities.Combat{Attack: 5, Defense: 2},
			Enemy:          &entities.Enemy{Type: "goblin"},
			Actor:          &entities.Actor{Speed: 100},
			AI:             &entities.AI{Behavior: entities.BehaviorChase},
			Renderable:     &entities.Renderable{Glyph: 'g', Color: "green"},
			BlocksMovement: true,
		},
	}
}

// At sets the position
func (b *EnemyBuilder) At(p grid.Point) *EnemyBuilder {
	b.c.Position = entities.At(p)
	return b
}

// WithType sets the enemy type and name
func (b *EnemyBuilder) WithType(enemyType, name string) *EnemyBuilder {
	b.c.Enemy.Type = enemyType
	b.c.Name = name
	return b
}

// WithHealth sets current and maximum health
func (b *EnemyBuilder) WithHealth(current, maximum int) *EnemyBuilder {
	b.c.Health = &entities.Health{Current: current, Maximum: maximum}
	return b
}

// Dead drops health to zero
func (b *EnemyBuilder) Dead() *EnemyBuilder {
	b.c.Health.Current = 0
	return b
}

// Build returns a copy of the components
func (b *EnemyBuilder) Build() entities.Components {
	return b.c.Clone()
}
