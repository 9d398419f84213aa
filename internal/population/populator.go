// Package population spawns the enemies and floor loot of freshly generated
// levels, scaled to their depth.
package population

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-dungeon/internal/difficulty"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/roller"
)

// Defaults applied to zero Config values
const (
	DefaultEnemiesPerLevel = 10
	DefaultLootPiles       = 5
	DefaultMinSpeed        = 80
	DefaultSpeedSpread     = 40
)

// Config holds the dependencies of a Populator
type Config struct {
	World  entities.World
	Roller dice.Roller
	Scaler *difficulty.Scaler

	// Bestiary defaults to the built-in table
	Bestiary *Bestiary

	EnemiesPerLevel int
	LootPiles       int
	MinSpeed        int
	SpeedSpread     int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.World == nil {
		vb.RequiredField("World")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Scaler == nil {
		vb.RequiredField("Scaler")
	}
	if c.EnemiesPerLevel < 0 {
		vb.InvalidField("EnemiesPerLevel", "must not be negative")
	}
	if c.LootPiles < 0 {
		vb.InvalidField("LootPiles", "must not be negative")
	}
	errors.ValidatePositive("MinSpeed", c.MinSpeed, vb)
	errors.ValidatePositive("SpeedSpread", c.SpeedSpread, vb)

	return vb.Build()
}

// Populator fills levels from a bestiary
type Populator struct {
	world    entities.World
	roller   dice.Roller
	scaler   *difficulty.Scaler
	bestiary *Bestiary

	enemiesPerLevel int
	lootPiles       int
	minSpeed        int
	speedSpread     int
}

var _ dungeon.Populator = (*Populator)(nil)

// New creates a Populator. Zero counts fall back to the defaults.
func New(cfg *Config) (*Populator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	c := *cfg
	if c.EnemiesPerLevel == 0 {
		c.EnemiesPerLevel = DefaultEnemiesPerLevel
	}
	if c.LootPiles == 0 {
		c.LootPiles = DefaultLootPiles
	}
	if c.MinSpeed == 0 {
		c.MinSpeed = DefaultMinSpeed
	}
	if c.SpeedSpread == 0 {
		c.SpeedSpread = DefaultSpeedSpread
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	b := c.Bestiary
	if b == nil {
		var err error
		if b, err = DefaultBestiary(); err != nil {
			return nil, errors.Wrap(err, "failed to load default bestiary")
		}
	}

	return &Populator{
		world:           c.World,
		roller:          c.Roller,
		scaler:          c.Scaler,
		bestiary:        b,
		enemiesPerLevel: c.EnemiesPerLevel,
		lootPiles:       c.LootPiles,
		minSpeed:        c.MinSpeed,
		speedSpread:     c.SpeedSpread,
	}, nil
}

// Populate spawns enemies and loot piles on free walkable tiles of the
// level. Staircases, the spawn point and occupied tiles are never used.
func (p *Populator) Populate(ctx context.Context, input *dungeon.PopulateInput) (*dungeon.PopulateOutput, error) {
	if input == nil || input.Level == nil {
		return nil, errors.InvalidArgument("level is required")
	}
	level := input.Level
	free := p.freeTiles(level)
	out := &dungeon.PopulateOutput{}

	for range p.enemiesPerLevel {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "population canceled")
		}
		at, ok, err := p.take(&free)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, err := p.SpawnEnemy(level.Depth, at); err != nil {
			return nil, err
		}
		out.Enemies++
	}

	for range p.lootPiles {
		at, ok, err := p.take(&free)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		drop, err := p.DropLoot(&DropLootInput{Depth: level.Depth, At: at})
		if err != nil {
			return nil, err
		}
		out.Items += len(drop.Items)
	}

	slog.Debug("Populated level",
		"depth", level.Depth,
		"enemies", out.Enemies,
		"items", out.Items,
	)

	return out, nil
}

// SpawnEnemy places a random creature from the bestiary at the given tile,
// scaled to depth
func (p *Populator) SpawnEnemy(depth int, at grid.Point) (*entities.Entity, error) {
	i, err := roller.Intn(p.roller, len(p.bestiary.Enemies))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick enemy")
	}
	spread, err := roller.Intn(p.roller, p.speedSpread)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll speed")
	}

	c := p.bestiary.Enemies[i].components()
	c.Position = entities.At(at)
	c.Actor = &entities.Actor{Speed: p.minSpeed + spread}
	p.scaler.ScaleEnemy(&c, depth)

	return p.world.Spawn(c), nil
}

// DropLootInput is where and how deep a drop happens
type DropLootInput struct {
	Depth int
	At    grid.Point
}

// DropLootOutput lists the spawned items, possibly none
type DropLootOutput struct {
	Items []*entities.Entity
}

// DropLoot rolls a drop at a tile: the drop chance, the item count and for
// each item whether it is equipment or a consumable
func (p *Populator) DropLoot(input *DropLootInput) (*DropLootOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out := &DropLootOutput{}

	drop, err := p.scaler.ShouldDropLoot(input.Depth, p.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll loot")
	}
	if !drop {
		return out, nil
	}

	count, err := p.scaler.LootCount(input.Depth, p.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll loot count")
	}
	for range count {
		c, ok, err := p.rollItem(input.Depth)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		c.Position = entities.At(input.At)
		out.Items = append(out.Items, p.world.Spawn(c))
	}

	return out, nil
}

func (p *Populator) rollItem(depth int) (entities.Components, bool, error) {
	equipment, err := p.scaler.ShouldDropEquipment(depth, p.roller)
	if err != nil {
		return entities.Components{}, false, errors.Wrap(err, "failed to roll item kind")
	}

	table, kind := p.bestiary.Consumables, entities.ItemConsumable
	if equipment && len(p.bestiary.Equipment) > 0 {
		table, kind = p.bestiary.Equipment, entities.ItemEquipment
	}
	if len(table) == 0 {
		return entities.Components{}, false, nil
	}

	i, err := roller.Intn(p.roller, len(table))
	if err != nil {
		return entities.Components{}, false, errors.Wrap(err, "failed to pick item")
	}
	return table[i].components(kind), true, nil
}

func (p *Populator) freeTiles(level *dungeon.Level) []grid.Point {
	reserved := mapset.New[grid.Point]()
	reserved.Put(level.Spawn)
	if level.UpStairs != nil {
		reserved.Put(*level.UpStairs)
	}
	if level.DownStairs != nil {
		reserved.Put(*level.DownStairs)
	}

	var free []grid.Point
	for _, pt := range level.Map.WalkablePoints() {
		if reserved.Has(pt) || len(p.world.AtPosition(pt)) > 0 {
			continue
		}
		free = append(free, pt)
	}
	return free
}

// take removes a random tile from free
func (p *Populator) take(free *[]grid.Point) (grid.Point, bool, error) {
	tiles := *free
	if len(tiles) == 0 {
		return grid.Point{}, false, nil
	}
	i, err := roller.Intn(p.roller, len(tiles))
	if err != nil {
		return grid.Point{}, false, errors.Wrap(err, "failed to pick tile")
	}
	at := tiles[i]
	tiles[i] = tiles[len(tiles)-1]
	*free = tiles[:len(tiles)-1]
	return at, true, nil
}
