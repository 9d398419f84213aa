package difficulty_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/difficulty"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/roller"
)

// fixedRoller always rolls the same face
type fixedRoller struct {
	face int
}

func (f *fixedRoller) Roll(_ int) (int, error) { return f.face, nil }
func (f *fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = f.face
	}
	return out, nil
}

type ScalerTestSuite struct {
	suite.Suite
	scaler *difficulty.Scaler
}

func TestScalerSuite(t *testing.T) {
	suite.Run(t, new(ScalerTestSuite))
}

func (s *ScalerTestSuite) SetupTest() {
	s.scaler = difficulty.MustDefault()
}

func (s *ScalerTestSuite) TestScaledStat() {
	testCases := []struct {
		name     string
		base     int
		depth    int
		expected int
	}{
		{"first level is unscaled", 10, 1, 10},
		{"surface is unscaled", 10, 0, 10},
		{"second level rounds", 10, 2, 11},
		{"depth five health", 20, 5, 31},
		{"depth ten health", 20, 10, 55},
		{"depth ten attack", 5, 10, 14},
		{"depth ten defense", 2, 10, 6},
		{"at the cap", 10, 30, 267},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, s.scaler.ScaledStat(tc.base, tc.depth))
		})
	}
}

func (s *ScalerTestSuite) TestScalingIsCapped() {
	s.Equal(s.scaler.ScaledStat(10, 30), s.scaler.ScaledStat(10, 31))
	s.Equal(s.scaler.ScaledStat(10, 30), s.scaler.ScaledStat(10, 500))
	s.Equal(s.scaler.Multiplier(30), s.scaler.Multiplier(45))
	s.Equal(30, s.scaler.EffectiveDepth(45))
	s.Equal(12, s.scaler.EffectiveDepth(12))
	s.True(s.scaler.WithinScalingCap(30))
	s.False(s.scaler.WithinScalingCap(31))
}

func (s *ScalerTestSuite) TestMultiplier() {
	s.Equal(1.0, s.scaler.Multiplier(1))
	s.InDelta(1.12, s.scaler.Multiplier(2), 1e-9)
	s.InDelta(1.5735, s.scaler.Multiplier(5), 1e-4)
	s.InDelta(2.7731, s.scaler.Multiplier(10), 1e-4)
}

func (s *ScalerTestSuite) TestLootDropRate() {
	s.Equal(10, s.scaler.LootDropRate(0))
	s.Equal(15, s.scaler.LootDropRate(1))
	s.Equal(35, s.scaler.LootDropRate(5))
	s.Equal(60, s.scaler.LootDropRate(10))
	s.Equal(60, s.scaler.LootDropRate(100))
}

func (s *ScalerTestSuite) TestEquipmentDropChance() {
	s.Equal(10, s.scaler.EquipmentDropChance(0))
	s.Equal(20, s.scaler.EquipmentDropChance(5))
	s.Equal(50, s.scaler.EquipmentDropChance(20))
	s.Equal(50, s.scaler.EquipmentDropChance(100))
}

func (s *ScalerTestSuite) TestShouldDrop() {
	lowest := &fixedRoller{face: 1}
	highest := &fixedRoller{face: 100}

	drop, err := s.scaler.ShouldDropLoot(1, lowest)
	s.Require().NoError(err)
	s.True(drop)

	drop, err = s.scaler.ShouldDropLoot(100, highest)
	s.Require().NoError(err)
	s.False(drop)

	// a roll of 60 is the 60th percentile, just outside a 60% rate
	drop, err = s.scaler.ShouldDropLoot(10, &fixedRoller{face: 61})
	s.Require().NoError(err)
	s.False(drop)
	drop, err = s.scaler.ShouldDropLoot(10, &fixedRoller{face: 60})
	s.Require().NoError(err)
	s.True(drop)

	equip, err := s.scaler.ShouldDropEquipment(0, &fixedRoller{face: 10})
	s.Require().NoError(err)
	s.True(equip)
	equip, err = s.scaler.ShouldDropEquipment(0, &fixedRoller{face: 11})
	s.Require().NoError(err)
	s.False(equip)
}

func (s *ScalerTestSuite) TestLootCountBounds() {
	r := roller.NewSeeded(17)
	for _, tc := range []struct{ depth, max int }{{1, 1}, {5, 1}, {6, 2}, {15, 2}, {16, 3}, {40, 3}} {
		s.Equal(tc.max, s.scaler.MaxLootCount(tc.depth))
		seen := map[int]bool{}
		for i := 0; i < 200; i++ {
			n, err := s.scaler.LootCount(tc.depth, r)
			s.Require().NoError(err)
			s.GreaterOrEqual(n, 0)
			s.LessOrEqual(n, tc.max)
			seen[n] = true
		}
		s.True(seen[0] && seen[tc.max], "depth %d should produce both 0 and %d", tc.depth, tc.max)
	}
}

func (s *ScalerTestSuite) TestDepthDisplay() {
	s.Equal(30, s.scaler.DepthInFeet(1))
	s.Equal(150, s.scaler.DepthInFeet(5))
	s.Equal(600, s.scaler.DepthInFeet(20))
	s.Equal("Depth: -150 ft", s.scaler.DepthDisplay(5))
}

func (s *ScalerTestSuite) TestStats() {
	stats := s.scaler.Stats(5)
	s.Equal(5, stats.Depth)
	s.InDelta(1.57, stats.Multiplier, 0.01)
	s.Equal(35, stats.LootDropRate)
	s.Equal(20, stats.EquipmentRate)
	s.Equal(1, stats.MaxLootCount)
	s.Equal(150, stats.DepthInFeet)
	s.Equal(31, stats.ExampleHealth)
	s.Equal(8, stats.ExampleAttack)
	s.Equal(3, stats.ExampleDefense)
}

func (s *ScalerTestSuite) TestScaleEnemy() {
	c := entities.Components{
		Health: &entities.Health{Current: 12, Maximum: 30},
		Combat: &entities.Combat{Attack: 5, Defense: 2},
		Actor:  &entities.Actor{Speed: 100},
		Enemy:  &entities.Enemy{Type: "Orc"},
	}

	s.scaler.ScaleEnemy(&c, 5)

	s.Equal(47, c.Health.Maximum)
	s.Equal(47, c.Health.Current)
	s.Equal(8, c.Combat.Attack)
	s.Equal(3, c.Combat.Defense)
	s.Equal(157, c.Actor.Speed)
	s.Equal("Orc", c.Enemy.Type)

	bare := entities.Components{Name: "statue"}
	s.NotPanics(func() { s.scaler.ScaleEnemy(&bare, 5) })
	s.NotPanics(func() { s.scaler.ScaleEnemy(nil, 5) })
}

func (s *ScalerTestSuite) TestCustomCurve() {
	scaler, err := difficulty.New(&difficulty.Config{ScalingBase: 2, MaxLevel: 3, FeetPerLevel: 10})
	s.Require().NoError(err)

	s.Equal(40, scaler.ScaledStat(10, 3))
	s.Equal(40, scaler.ScaledStat(10, 9))
	s.Equal("Depth: -40 ft", scaler.DepthDisplay(4))
}

func (s *ScalerTestSuite) TestNewRejectsBadCurve() {
	_, err := difficulty.New(&difficulty.Config{ScalingBase: 0.5})
	s.True(errors.IsInvalidArgument(err))

	_, err = difficulty.New(&difficulty.Config{LootMaxRate: 150})
	s.True(errors.IsInvalidArgument(err))
}
