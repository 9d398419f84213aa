package progress

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-dungeon/internal/redis"
)

// Problem describes why a stored progress record cannot be trusted
type Problem string

const (
	ProblemCorruptJSON     Problem = "corrupt_json"
	ProblemPlayerMismatch  Problem = "player_mismatch"
	ProblemInvalidBest     Problem = "invalid_personal_best"
	ProblemNegativeVictory Problem = "negative_victories"
)

// Finding is one bad record found by Audit
type Finding struct {
	Key     string
	Problem Problem
}

// AuditInput selects the client to scan and whether to remove bad records
type AuditInput struct {
	Client redisclient.Client
	Delete bool
}

// AuditOutput reports what the scan found
type AuditOutput struct {
	Checked  int
	Findings []Finding
	Deleted  int
}

// Audit scans every progress record in Redis and reports the ones the
// repository would refuse to load or that hold impossible values. With Delete
// set the bad records are removed so the players start over from depth 1.
func Audit(ctx context.Context, input *AuditInput) (*AuditOutput, error) {
	if input == nil || input.Client == nil {
		return nil, errors.InvalidArgument("client is required")
	}

	out := &AuditOutput{}
	iter := input.Client.Scan(ctx, 0, progressKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		out.Checked++

		raw, err := input.Client.Get(ctx, key).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}
		if problem, ok := inspect(key, raw); !ok {
			out.Findings = append(out.Findings, Finding{Key: key, Problem: problem})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan progress keys")
	}

	if !input.Delete || len(out.Findings) == 0 {
		return out, nil
	}

	keys := make([]string, len(out.Findings))
	for i, f := range out.Findings {
		keys[i] = f.Key
	}
	n, err := input.Client.Del(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete progress records")
	}
	out.Deleted = int(n)

	return out, nil
}

func inspect(key, raw string) (Problem, bool) {
	var p Progress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return ProblemCorruptJSON, false
	}
	switch {
	case p.PlayerID != strings.TrimPrefix(key, progressKeyPrefix):
		return ProblemPlayerMismatch, false
	case p.PersonalBest < 1:
		return ProblemInvalidBest, false
	case p.Victories < 0:
		return ProblemNegativeVictory, false
	}
	return "", true
}
