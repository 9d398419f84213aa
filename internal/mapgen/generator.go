// Package mapgen produces level layouts: rooms joined by corridors,
// cellular-automata caves, and a fixed arena used for tests and demos.
package mapgen

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
)

//go:generate mockgen -destination=mock/mock_generator.go -package=mapgenmock github.com/KirkDiggler/rpg-dungeon/internal/mapgen Generator

// Algorithm selects a layout strategy
type Algorithm string

const (
	AlgorithmRooms  Algorithm = "rooms"
	AlgorithmCave   Algorithm = "cave"
	AlgorithmSimple Algorithm = "simple"
)

// Algorithms lists every supported algorithm name
func Algorithms() []string {
	return []string{string(AlgorithmRooms), string(AlgorithmCave), string(AlgorithmSimple)}
}

// Default tuning, matching the classic 80x50 roguelike layout
const (
	DefaultMinRoomSize     = 4
	DefaultMaxRoomSize     = 10
	DefaultMaxRooms        = 30
	DefaultMinRooms        = 2
	DefaultCaveIterations  = 4
	DefaultWallProbability = 0.45
	DefaultMaxAttempts     = 5
)

// Generator builds level layouts
type Generator interface {
	// Generate produces a playable layout, retrying when the output is
	// degenerate and failing with a generation_degenerate error if every
	// attempt is
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)

	// Rooms places non-overlapping rectangular rooms and links each to the
	// previously placed one with an L-shaped corridor
	Rooms(width, height int) (*Layout, error)

	// Cave seeds random walls and smooths them with the 5-of-8 rule.
	// Connectivity is not guaranteed.
	Cave(width, height int) (*Layout, error)

	// Simple returns a walled arena with a hollow box in the middle
	Simple(width, height int) (*Layout, error)
}

// Layout is a generated map plus the rooms carved into it, if any
type Layout struct {
	Map       *grid.Field
	Rooms     []grid.Rect
	Algorithm Algorithm
}

// GenerateInput selects the size and algorithm of a level
type GenerateInput struct {
	Depth     int
	Width     int
	Height    int
	Algorithm Algorithm
}

// GenerateOutput is the accepted layout and how many attempts it took
type GenerateOutput struct {
	Layout   *Layout
	Attempts int
}

// Config holds the dependencies and tuning of the generator. Zero tuning
// values fall back to the defaults above.
type Config struct {
	Roller dice.Roller

	MinRoomSize     int
	MaxRoomSize     int
	MaxRooms        int
	MinRooms        int
	CaveIterations  int
	WallProbability float64
	MaxAttempts     int
}

func (c *Config) applyDefaults() {
	if c.MinRoomSize == 0 {
		c.MinRoomSize = DefaultMinRoomSize
	}
	if c.MaxRoomSize == 0 {
		c.MaxRoomSize = DefaultMaxRoomSize
	}
	if c.MaxRooms == 0 {
		c.MaxRooms = DefaultMaxRooms
	}
	if c.MinRooms == 0 {
		c.MinRooms = DefaultMinRooms
	}
	if c.CaveIterations == 0 {
		c.CaveIterations = DefaultCaveIterations
	}
	if c.WallProbability == 0 {
		c.WallProbability = DefaultWallProbability
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
}

// Validate ensures all required dependencies are provided and tuning is sane
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	errors.ValidatePositive("MinRoomSize", c.MinRoomSize, vb)
	if c.MaxRoomSize < c.MinRoomSize {
		vb.Field("MaxRoomSize", "must not be less than MinRoomSize")
	}
	errors.ValidatePositive("MaxRooms", c.MaxRooms, vb)
	errors.ValidateRange("MinRooms", c.MinRooms, 1, c.MaxRooms, vb)
	errors.ValidateRange("CaveIterations", c.CaveIterations, 0, 20, vb)
	errors.ValidateFloatRange("WallProbability", c.WallProbability, 0, 1, vb)
	errors.ValidateRange("MaxAttempts", c.MaxAttempts, 1, 100, vb)

	return vb.Build()
}

type generator struct {
	roller dice.Roller

	minRoomSize     int
	maxRoomSize     int
	maxRooms        int
	minRooms        int
	caveIterations  int
	wallProbability float64
	maxAttempts     int
}

var _ Generator = (*generator)(nil)

// New creates a generator with the provided configuration
func New(cfg *Config) (Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	c := *cfg
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &generator{
		roller:          c.Roller,
		minRoomSize:     c.MinRoomSize,
		maxRoomSize:     c.MaxRoomSize,
		maxRooms:        c.MaxRooms,
		minRooms:        c.MinRooms,
		caveIterations:  c.CaveIterations,
		wallProbability: c.WallProbability,
		maxAttempts:     c.MaxAttempts,
	}, nil
}
