// Package errors provides the structured error type used across the dungeon
// engine.
//
// Errors carry a Code, a user-facing message, an optional cause and free-form
// metadata. Wrapping keeps the code of the innermost *Error so callers can
// classify failures without string matching:
//
//	if err := gen.Generate(ctx, input); err != nil {
//	    return errors.Wrapf(err, "failed to generate depth %d", depth)
//	}
//
// Conditions specific to level management are tagged with a reason:
//
//	return errors.FailedPrecondition("map has no walkable tiles").
//	    WithReason(errors.ReasonGenerationDegenerate)
//
// and checked with errors.IsGenerationDegenerate.
//
// Config validation goes through ValidationBuilder, which collects every
// failing field and builds a single InvalidArgument error:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidatePositive("Width", c.Width, vb)
//	errors.ValidateFloatRange("WallProbability", c.WallProbability, 0, 1, vb)
//	return vb.Build()
package errors
