// Package roller adapts the toolkit dice.Roller contract to the integer and
// probability draws used by map generation, staircase placement, loot and
// population.
package roller

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Seeded is a reproducible dice.Roller backed by a PCG source. It is not safe
// for concurrent use.
type Seeded struct {
	rng *rand.Rand
}

var _ dice.Roller = (*Seeded)(nil)

// NewSeeded creates a roller whose sequence is fully determined by seed
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll returns a value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return s.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}
	results := make([]int, count)
	for i := range results {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func Intn(r dice.Roller, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	v, err := r.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	return v - 1, nil
}

// Between returns a value in [lo, hi). hi <= lo yields lo.
func Between(r dice.Roller, lo, hi int) (int, error) {
	v, err := Intn(r, hi-lo)
	if err != nil {
		return 0, err
	}
	return lo + v, nil
}

// Percent reports success for a percentage chance in [0, 100]
func Percent(r dice.Roller, pct int) (bool, error) {
	v, err := Intn(r, 100)
	if err != nil {
		return false, err
	}
	return v < pct, nil
}

const chanceResolution = 10000

// Chance reports success with probability p in [0, 1], resolved to 1/10000
func Chance(r dice.Roller, p float64) (bool, error) {
	v, err := Intn(r, chanceResolution)
	if err != nil {
		return false, err
	}
	return float64(v) < p*chanceResolution, nil
}
