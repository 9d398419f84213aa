package progress

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
)

// InMemoryRepository implements Repository for runs without a Redis endpoint
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]Progress
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository. A nil clock uses real time.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]Progress),
	}
}

// Get returns the stored progress of a player
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.store[input.PlayerID]
	if !ok {
		return nil, errors.NotFoundf("progress for player %s not found", input.PlayerID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Progress: &p}, nil
}

// RecordDepth raises the personal best if depth exceeds it
func (r *InMemoryRepository) RecordDepth(_ context.Context, input *RecordDepthInput) (*RecordDepthOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateRecord(input.PlayerID, input.Depth); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.entry(input.PlayerID)
	newRecord := p.apply(input.Depth, r.clock.Now())
	r.store[input.PlayerID] = p

	return &RecordDepthOutput{Progress: &p, NewRecord: newRecord}, nil
}

// RecordVictory increments the victory count of a player
func (r *InMemoryRepository) RecordVictory(_ context.Context, input *RecordVictoryInput) (*RecordVictoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateRecord(input.PlayerID, input.Depth); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.entry(input.PlayerID)
	p.apply(input.Depth, r.clock.Now())
	p.Victories++
	r.store[input.PlayerID] = p

	return &RecordVictoryOutput{Progress: &p}, nil
}

func (r *InMemoryRepository) entry(playerID string) Progress {
	p, ok := r.store[playerID]
	if !ok {
		p = Progress{PlayerID: playerID}
	}
	return p
}
