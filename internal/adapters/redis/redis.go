// adapters/redis/redis.go
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mahabubulhasibshawon/shiptrack/internal/ports"
)

// Store is a KeyValueStore backed by Redis strings. A zero ttl keeps keys forever.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(addr, username, password string, db int, ttl time.Duration) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrKeyNotFound
	}
	return data, err
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, s.ttl).Err()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
