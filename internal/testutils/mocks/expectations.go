// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
	mapgenmock "github.com/KirkDiggler/rpg-dungeon/internal/mapgen/mock"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/progress"
	progressmock "github.com/KirkDiggler/rpg-dungeon/internal/repositories/progress/mock"
)

// ExpectNoProgress sets up a progress lookup that finds nothing stored
func ExpectNoProgress(ctx context.Context, repo *progressmock.MockRepository, playerName string) {
	repo.EXPECT().
		Get(ctx, &progress.GetInput{PlayerID: playerName}).
		Return(nil, errors.NotFoundf("progress for player %s not found", playerName))
}

// ExpectStoredBest sets up a progress lookup that returns a personal best
func ExpectStoredBest(ctx context.Context, repo *progressmock.MockRepository, playerName string, best int) {
	repo.EXPECT().
		Get(ctx, &progress.GetInput{PlayerID: playerName}).
		Return(&progress.GetOutput{
			Progress: &progress.Progress{PlayerID: playerName, PersonalBest: best},
		}, nil)
}

// ExpectRecordDepth accepts any depth record for the player
func ExpectRecordDepth(ctx context.Context, repo *progressmock.MockRepository, playerName string) *gomock.Call {
	return repo.EXPECT().
		RecordDepth(ctx, gomock.Cond(func(x any) bool {
			in, ok := x.(*progress.RecordDepthInput)
			return ok && in.PlayerID == playerName
		})).
		DoAndReturn(func(_ context.Context, in *progress.RecordDepthInput) (*progress.RecordDepthOutput, error) {
			return &progress.RecordDepthOutput{
				Progress:  &progress.Progress{PlayerID: in.PlayerID, PersonalBest: in.Depth},
				NewRecord: true,
			}, nil
		})
}

// ExpectGenerate makes the next Generate call return layout
func ExpectGenerate(ctx context.Context, gen *mapgenmock.MockGenerator, layout *mapgen.Layout) *gomock.Call {
	return gen.EXPECT().
		Generate(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *mapgen.GenerateInput) (*mapgen.GenerateOutput, error) {
			if in.Depth < 1 {
				return nil, errors.InvalidArgumentf("depth must be at least 1, got %d", in.Depth)
			}
			return &mapgen.GenerateOutput{Layout: layout, Attempts: 1}, nil
		})
}
