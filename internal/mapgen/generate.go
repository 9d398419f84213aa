package mapgen

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// minWalkableTiles is the smallest layout that can hold two distinct
// staircases
const minWalkableTiles = 2

// Generate runs the requested algorithm until it yields a usable layout or
// the attempt budget runs out
func (g *generator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("Width", input.Width, vb)
	errors.ValidatePositive("Height", input.Height, vb)
	algorithm := input.Algorithm
	if algorithm == "" {
		algorithm = AlgorithmRooms
	}
	errors.ValidateEnum("Algorithm", string(algorithm), Algorithms(), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var reason string
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Canceled(err.Error())
		}

		layout, err := g.build(algorithm, input.Width, input.Height)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to generate %s layout", algorithm)
		}

		reason = g.degenerate(layout)
		if reason == "" {
			slog.Debug("Generated level layout",
				"depth", input.Depth,
				"algorithm", algorithm,
				"rooms", len(layout.Rooms),
				"walkable", layout.Map.WalkableCount(),
				"attempts", attempt,
			)
			return &GenerateOutput{Layout: layout, Attempts: attempt}, nil
		}

		slog.Warn("Discarding degenerate level layout",
			"depth", input.Depth,
			"algorithm", algorithm,
			"attempt", attempt,
			"reason", reason,
		)
	}

	return nil, errors.FailedPreconditionf("no playable %s layout for depth %d after %d attempts: %s",
		algorithm, input.Depth, g.maxAttempts, reason).
		WithReason(errors.ReasonGenerationDegenerate).
		WithMeta("depth", input.Depth)
}

func (g *generator) build(algorithm Algorithm, width, height int) (*Layout, error) {
	switch algorithm {
	case AlgorithmCave:
		return g.Cave(width, height)
	case AlgorithmSimple:
		return g.Simple(width, height)
	default:
		return g.Rooms(width, height)
	}
}

// degenerate returns why a layout is unusable, or "" if it is fine
func (g *generator) degenerate(layout *Layout) string {
	if layout.Map.WalkableCount() < minWalkableTiles {
		return "too few walkable tiles"
	}
	if layout.Algorithm == AlgorithmRooms && len(layout.Rooms) < g.minRooms {
		return "too few rooms"
	}
	return ""
}
