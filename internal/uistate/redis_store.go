package uistate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: "ui_state"}
}

func (s *RedisStore) key(userID uint) string {
	return fmt.Sprintf("%s:%d", s.prefix, userID)
}

func (s *RedisStore) Load(ctx context.Context, userID uint) (State, error) {
	raw, err := s.rdb.Get(ctx, s.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, ErrNotFound
	}
	if err != nil {
		return State{}, err
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return State{}, fmt.Errorf("decode ui state: %w", err)
	}
	return st, nil
}

// Save keeps the state without expiry.
func (s *RedisStore) Save(ctx context.Context, userID uint, st State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(userID), b, 0).Err()
}
