package progress

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-dungeon/internal/redis"
)

const (
	// Key pattern: progress:{player_id}
	progressKeyPrefix = "progress:"

	errPlayerIDEmpty = "player ID cannot be empty"
	errDepthInvalid  = "depth must be at least 1"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for player progress
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get returns the stored progress of a player
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	p, err := r.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Progress: p}, nil
}

// RecordDepth raises the personal best if depth exceeds it
func (r *redisRepository) RecordDepth(ctx context.Context, input *RecordDepthInput) (*RecordDepthOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateRecord(input.PlayerID, input.Depth); err != nil {
		return nil, err
	}

	p, err := r.loadOrNew(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	newRecord := p.apply(input.Depth, r.clock.Now())
	if !newRecord {
		return &RecordDepthOutput{Progress: p}, nil
	}

	if err := r.save(ctx, p); err != nil {
		return nil, err
	}

	return &RecordDepthOutput{Progress: p, NewRecord: true}, nil
}

// RecordVictory increments the victory count of a player
func (r *redisRepository) RecordVictory(ctx context.Context, input *RecordVictoryInput) (*RecordVictoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateRecord(input.PlayerID, input.Depth); err != nil {
		return nil, err
	}

	p, err := r.loadOrNew(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	p.apply(input.Depth, r.clock.Now())
	p.Victories++

	if err := r.save(ctx, p); err != nil {
		return nil, err
	}

	return &RecordVictoryOutput{Progress: p}, nil
}

func (r *redisRepository) load(ctx context.Context, playerID string) (*Progress, error) {
	raw, err := r.client.Get(ctx, r.buildKey(playerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("progress for player %s not found", playerID)
		}
		return nil, errors.Wrapf(err, "failed to get progress from Redis")
	}

	var p Progress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal progress")
	}

	return &p, nil
}

func (r *redisRepository) loadOrNew(ctx context.Context, playerID string) (*Progress, error) {
	p, err := r.load(ctx, playerID)
	if errors.IsNotFound(err) {
		return &Progress{PlayerID: playerID}, nil
	}
	return p, err
}

func (r *redisRepository) save(ctx context.Context, p *Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal progress")
	}

	if err := r.client.Set(ctx, r.buildKey(p.PlayerID), data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store progress in Redis")
	}

	return nil
}

func (r *redisRepository) buildKey(playerID string) string {
	return progressKeyPrefix + playerID
}

func validateRecord(playerID string, depth int) error {
	if playerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	if depth < 1 {
		return errors.InvalidArgument(errDepthInvalid)
	}
	return nil
}
