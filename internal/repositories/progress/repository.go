// Package progress stores each player's deepest level reached and victory
// count so a personal best survives between runs
package progress

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=progressmock github.com/KirkDiggler/rpg-dungeon/internal/repositories/progress Repository

// Progress is the persisted record of one player
type Progress struct {
	PlayerID     string    `json:"player_id"`
	PersonalBest int       `json:"personal_best"`
	Victories    int       `json:"victories"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GetInput identifies the player to load
type GetInput struct {
	PlayerID string
}

// GetOutput contains the stored progress
type GetOutput struct {
	Progress *Progress
}

// RecordDepthInput reports a depth the player has reached
type RecordDepthInput struct {
	PlayerID string
	Depth    int
}

// RecordDepthOutput contains the updated progress and whether the depth
// beat the previous personal best
type RecordDepthOutput struct {
	Progress  *Progress
	NewRecord bool
}

// RecordVictoryInput reports that the player reached the victory depth
type RecordVictoryInput struct {
	PlayerID string
	Depth    int
}

// RecordVictoryOutput contains the updated progress
type RecordVictoryOutput struct {
	Progress *Progress
}

// Repository defines the storage operations for player progress
type Repository interface {
	// Get returns the progress of a player, or NotFound if none is stored
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// RecordDepth raises the personal best if depth exceeds it
	RecordDepth(ctx context.Context, input *RecordDepthInput) (*RecordDepthOutput, error)

	// RecordVictory increments the victory count and raises the personal best
	RecordVictory(ctx context.Context, input *RecordVictoryInput) (*RecordVictoryOutput, error)
}

// apply folds a reached depth into p, reporting whether it is a new record
func (p *Progress) apply(depth int, now time.Time) bool {
	p.UpdatedAt = now
	if depth > p.PersonalBest {
		p.PersonalBest = depth
		return true
	}
	return false
}
