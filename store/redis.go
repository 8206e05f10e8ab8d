package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gitpan/Search-FreeText/errs"
)

// RedisStore wraps github.com/redis/go-redis/v9. Per SPEC_FULL.md §4.F, a
// Store need not be ordered; the engine never relies on key iteration
// order, so a plain Redis keyspace qualifies. Every key is namespaced
// under Prefix so Clear can scan-and-delete without touching the rest
// of a shared Redis instance (FLUSHDB would be too blunt).
type RedisStore struct {
	Addr     string
	Password string
	DB       int
	Prefix   string

	client *redis.Client
}

// NewRedisStore returns a Store backed by a Redis server at addr, with
// every key namespaced under prefix (default "search:").
func NewRedisStore(addr, password string, db int, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "search:"
	}
	return &RedisStore{Addr: addr, Password: password, DB: db, Prefix: prefix}
}

func (s *RedisStore) Open(ctx context.Context) error {
	s.client = redis.NewClient(&redis.Options{
		Addr:     s.Addr,
		Password: s.Password,
		DB:       s.DB,
	})
	if err := s.client.Ping(ctx).Err(); err != nil {
		return &errs.Store{Op: "open", Err: fmt.Errorf("redis: %w", err)}
	}
	return nil
}

func (s *RedisStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	if err != nil {
		return &errs.Store{Op: "close", Err: err}
	}
	return nil
}

func (s *RedisStore) key(key string) string {
	return s.Prefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, &errs.Store{Op: "get", Key: key, Err: err}
	}
	return value, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return &errs.Store{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return &errs.Store{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.Prefix+"*", 256).Result()
		if err != nil {
			return &errs.Store{Op: "clear", Err: err}
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return &errs.Store{Op: "clear", Err: err}
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return nil
}
