package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/eventistan/internal/navigation"
)

// RedisStore keeps sessions as JSON values with a sliding TTL.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(rdb *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *RedisStore) key(id string) string { return r.prefix + ":" + id }

func (r *RedisStore) Load(ctx context.Context, id string) (navigation.State, error) {
	const op = "session.RedisStore.Load"

	raw, err := r.rdb.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return navigation.State{}, ErrNotFound
	}
	if err != nil {
		return navigation.State{}, fmt.Errorf("%s: %w", op, err)
	}
	var s navigation.State
	if err := json.Unmarshal(raw, &s); err != nil {
		return navigation.State{}, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, id string, s navigation.State) error {
	const op = "session.RedisStore.Save"

	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := r.rdb.Set(ctx, r.key(id), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, r.key(id)).Err()
}
