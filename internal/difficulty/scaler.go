// Package difficulty maps dungeon depth to enemy stats and loot odds.
// Every function is pure apart from the dice rolled by the Should* helpers.
package difficulty

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/roller"
)

// Default tuning
const (
	DefaultScalingBase       = 1.12
	DefaultMaxLevel          = 30
	DefaultLootBaseRate      = 10
	DefaultLootPerLevel      = 5
	DefaultLootMaxRate       = 60
	DefaultEquipmentBaseRate = 10
	DefaultEquipmentPerLevel = 2
	DefaultEquipmentMaxRate  = 50
	DefaultFeetPerLevel      = 30
)

// reference enemy reported by Stats
const (
	exampleHealth  = 20
	exampleAttack  = 5
	exampleDefense = 2
)

// Config holds the scaling curve. Zero values fall back to the defaults.
type Config struct {
	ScalingBase       float64
	MaxLevel          int
	LootBaseRate      int
	LootPerLevel      int
	LootMaxRate       int
	EquipmentBaseRate int
	EquipmentPerLevel int
	EquipmentMaxRate  int
	FeetPerLevel      int
}

func (c *Config) applyDefaults() {
	if c.ScalingBase == 0 {
		c.ScalingBase = DefaultScalingBase
	}
	if c.MaxLevel == 0 {
		c.MaxLevel = DefaultMaxLevel
	}
	if c.LootBaseRate == 0 {
		c.LootBaseRate = DefaultLootBaseRate
	}
	if c.LootPerLevel == 0 {
		c.LootPerLevel = DefaultLootPerLevel
	}
	if c.LootMaxRate == 0 {
		c.LootMaxRate = DefaultLootMaxRate
	}
	if c.EquipmentBaseRate == 0 {
		c.EquipmentBaseRate = DefaultEquipmentBaseRate
	}
	if c.EquipmentPerLevel == 0 {
		c.EquipmentPerLevel = DefaultEquipmentPerLevel
	}
	if c.EquipmentMaxRate == 0 {
		c.EquipmentMaxRate = DefaultEquipmentMaxRate
	}
	if c.FeetPerLevel == 0 {
		c.FeetPerLevel = DefaultFeetPerLevel
	}
}

// Validate checks the curve parameters
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateFloatRange("ScalingBase", c.ScalingBase, 1, 10, vb)
	errors.ValidatePositive("MaxLevel", c.MaxLevel, vb)
	errors.ValidateRange("LootBaseRate", c.LootBaseRate, 0, 100, vb)
	errors.ValidateRange("LootMaxRate", c.LootMaxRate, 0, 100, vb)
	errors.ValidateRange("EquipmentBaseRate", c.EquipmentBaseRate, 0, 100, vb)
	errors.ValidateRange("EquipmentMaxRate", c.EquipmentMaxRate, 0, 100, vb)
	errors.ValidatePositive("FeetPerLevel", c.FeetPerLevel, vb)
	return vb.Build()
}

// Scaler computes depth-dependent values
type Scaler struct {
	cfg Config
}

// New creates a scaler. A nil config uses the defaults.
func New(cfg *Config) (*Scaler, error) {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Scaler{cfg: c}, nil
}

// MustDefault returns a scaler with the default curve
func MustDefault() *Scaler {
	s, err := New(nil)
	if err != nil {
		panic(err)
	}
	return s
}

// EffectiveDepth clamps depth to the scaling cap
func (s *Scaler) EffectiveDepth(depth int) int {
	return min(depth, s.cfg.MaxLevel)
}

// WithinScalingCap reports whether deeper levels still get harder
func (s *Scaler) WithinScalingCap(depth int) bool {
	return depth <= s.cfg.MaxLevel
}

// Multiplier is scalingBase^(effectiveDepth-1), or 1 at depth 1 and shallower
func (s *Scaler) Multiplier(depth int) float64 {
	if depth <= 1 {
		return 1
	}
	return math.Pow(s.cfg.ScalingBase, float64(s.EffectiveDepth(depth)-1))
}

// ScaledStat scales a level-1 stat to depth, rounding half to even
func (s *Scaler) ScaledStat(base, depth int) int {
	if depth <= 1 {
		return base
	}
	return int(math.RoundToEven(float64(base) * s.Multiplier(depth)))
}

// LootDropRate is the percent chance an enemy drops loot at depth
func (s *Scaler) LootDropRate(depth int) int {
	return min(s.cfg.LootBaseRate+depth*s.cfg.LootPerLevel, s.cfg.LootMaxRate)
}

// ShouldDropLoot rolls against LootDropRate
func (s *Scaler) ShouldDropLoot(depth int, r dice.Roller) (bool, error) {
	return roller.Percent(r, s.LootDropRate(depth))
}

// EquipmentDropChance is the percent chance a drop is equipment rather than
// a consumable
func (s *Scaler) EquipmentDropChance(depth int) int {
	return min(s.cfg.EquipmentBaseRate+depth*s.cfg.EquipmentPerLevel, s.cfg.EquipmentMaxRate)
}

// ShouldDropEquipment rolls against EquipmentDropChance
func (s *Scaler) ShouldDropEquipment(depth int, r dice.Roller) (bool, error) {
	return roller.Percent(r, s.EquipmentDropChance(depth))
}

// MaxLootCount is the most items one drop can hold at depth
func (s *Scaler) MaxLootCount(depth int) int {
	switch {
	case depth <= 5:
		return 1
	case depth <= 15:
		return 2
	default:
		return 3
	}
}

// LootCount rolls how many items drop, between 0 and MaxLootCount
func (s *Scaler) LootCount(depth int, r dice.Roller) (int, error) {
	return roller.Intn(r, s.MaxLootCount(depth)+1)
}

// DepthInFeet is how far below the surface a level lies
func (s *Scaler) DepthInFeet(depth int) int {
	return depth * s.cfg.FeetPerLevel
}

// DepthDisplay formats the depth for a HUD, e.g. "Depth: -150 ft"
func (s *Scaler) DepthDisplay(depth int) string {
	return fmt.Sprintf("Depth: -%d ft", s.DepthInFeet(depth))
}

// Stats summarises the curve at one depth using a 20/5/2 reference enemy
type Stats struct {
	Depth          int
	Multiplier     float64
	LootDropRate   int
	EquipmentRate  int
	MaxLootCount   int
	DepthInFeet    int
	ExampleHealth  int
	ExampleAttack  int
	ExampleDefense int
}

// Stats returns the scaling summary for depth
func (s *Scaler) Stats(depth int) Stats {
	return Stats{
		Depth:          depth,
		Multiplier:     s.Multiplier(depth),
		LootDropRate:   s.LootDropRate(depth),
		EquipmentRate:  s.EquipmentDropChance(depth),
		MaxLootCount:   s.MaxLootCount(depth),
		DepthInFeet:    s.DepthInFeet(depth),
		ExampleHealth:  s.ScaledStat(exampleHealth, depth),
		ExampleAttack:  s.ScaledStat(exampleAttack, depth),
		ExampleDefense: s.ScaledStat(exampleDefense, depth),
	}
}

// ScaleEnemy scales the health, combat and speed of c in place. Health is
// restored to the new maximum. Missing components are left alone.
func (s *Scaler) ScaleEnemy(c *entities.Components, depth int) {
	if c == nil {
		return
	}
	if c.Health != nil {
		c.Health.Maximum = s.ScaledStat(c.Health.Maximum, depth)
		c.Health.Current = c.Health.Maximum
	}
	if c.Combat != nil {
		c.Combat.Attack = s.ScaledStat(c.Combat.Attack, depth)
		c.Combat.Defense = s.ScaledStat(c.Combat.Defense, depth)
	}
	if c.Actor != nil {
		c.Actor.Speed = s.ScaledStat(c.Actor.Speed, depth)
	}
}
