// Package cache provides the per-session answer sequence store. The
// scoring core never touches it directly; services append results and
// read the sequence back for aggregation.
package cache

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"selectra/internal/model"
)

// SessionStore is the keyed, append-only sequence of answer results per
// session. Appends preserve arrival order; Get returns the full
// sequence (empty for an unknown session); Reset clears it.
type SessionStore interface {
	Append(ctx context.Context, sessionID string, result *model.AnswerResult) error
	Get(ctx context.Context, sessionID string) ([]model.AnswerResult, error)
	Reset(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a Redis-backed session store. Each
// session's answers live in a list under session:<id>:answers.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) key(sessionID string) string {
	return "session:" + sessionID + ":answers"
}

func (s *redisSessionStore) Append(ctx context.Context, sessionID string, result *model.AnswerResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "marshaling answer result")
	}
	return s.client.RPush(ctx, s.key(sessionID), data).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) ([]model.AnswerResult, error) {
	entries, err := s.client.LRange(ctx, s.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "reading session answers")
	}

	results := make([]model.AnswerResult, 0, len(entries))
	for _, entry := range entries {
		var result model.AnswerResult
		if err := json.Unmarshal([]byte(entry), &result); err != nil {
			return nil, errors.Wrap(err, "unmarshaling answer result")
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *redisSessionStore) Reset(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}
