package roller_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/roller"
)

type RollerTestSuite struct {
	suite.Suite
}

func TestRollerSuite(t *testing.T) {
	suite.Run(t, new(RollerTestSuite))
}

func (s *RollerTestSuite) TestSameSeedSameSequence() {
	a := roller.NewSeeded(42)
	b := roller.NewSeeded(42)

	for i := 0; i < 100; i++ {
		va, err := a.Roll(20)
		s.Require().NoError(err)
		vb, err := b.Roll(20)
		s.Require().NoError(err)
		s.Equal(va, vb)
	}
}

func (s *RollerTestSuite) TestRollBounds() {
	r := roller.NewSeeded(7)
	for i := 0; i < 500; i++ {
		v, err := r.Roll(6)
		s.Require().NoError(err)
		s.GreaterOrEqual(v, 1)
		s.LessOrEqual(v, 6)
	}

	_, err := r.Roll(0)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RollerTestSuite) TestRollN() {
	r := roller.NewSeeded(7)
	rolls, err := r.RollN(4, 6)
	s.Require().NoError(err)
	s.Len(rolls, 4)

	_, err = r.RollN(-1, 6)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RollerTestSuite) TestBetween() {
	r := roller.NewSeeded(3)
	for i := 0; i < 500; i++ {
		v, err := roller.Between(r, 4, 10)
		s.Require().NoError(err)
		s.GreaterOrEqual(v, 4)
		s.Less(v, 10)
	}

	v, err := roller.Between(r, 5, 5)
	s.Require().NoError(err)
	s.Equal(5, v)
}

func (s *RollerTestSuite) TestPercentAndChanceExtremes() {
	r := roller.NewSeeded(11)
	for i := 0; i < 100; i++ {
		ok, err := roller.Percent(r, 0)
		s.Require().NoError(err)
		s.False(ok)

		ok, err = roller.Percent(r, 100)
		s.Require().NoError(err)
		s.True(ok)

		ok, err = roller.Chance(r, 0)
		s.Require().NoError(err)
		s.False(ok)

		ok, err = roller.Chance(r, 1)
		s.Require().NoError(err)
		s.True(ok)
	}
}
