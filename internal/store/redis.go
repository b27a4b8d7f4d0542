package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix        = "taskbot:collection:"
	redisQuarantinePrefix = "taskbot:quarantine:"
)

// RedisStore keeps each collection as a single JSON value under a
// prefixed key.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Load(ctx context.Context, collection string) ([]byte, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+collection).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", collection, err)
	}
	return data, nil
}

func (s *RedisStore) Save(ctx context.Context, collection string, data []byte) error {
	if err := s.client.Set(ctx, redisKeyPrefix+collection, data, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", collection, err)
	}
	return nil
}

func (s *RedisStore) Quarantine(ctx context.Context, collection string) error {
	src := redisKeyPrefix + collection
	dst := fmt.Sprintf("%s%s:%s", redisQuarantinePrefix, collection, uuid.New().String())
	if err := s.client.Rename(ctx, src, dst).Err(); err != nil {
		return fmt.Errorf("rename %s: %w", src, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
