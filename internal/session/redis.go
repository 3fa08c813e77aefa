package session

import (
	"context"
	"errors"
	"fmt"

	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

var _ Store = (*RedisStore)(nil)

const redisKey = "miband:session"

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Save(ctx context.Context, s Session) error {
	data, err := go_json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := r.client.Set(ctx, redisKey, data, 0).Err(); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context) (Session, error) {
	data, err := r.client.Get(ctx, redisKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("loading session: %w", err)
	}
	var s Session
	if err := go_json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("decoding session: %w", err)
	}
	return s, nil
}

func (r *RedisStore) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
