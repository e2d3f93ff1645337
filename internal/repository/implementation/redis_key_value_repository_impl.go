package implementation

import (
	"context"
	"errors"

	"ai-notetaking-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// RedisKeyValueRepositoryImpl stores each document as a plain string key without expiry.
type RedisKeyValueRepositoryImpl struct {
	rdb *redis.Client
}

func NewRedisKeyValueRepository(rdb *redis.Client) contract.KeyValueRepository {
	return &RedisKeyValueRepositoryImpl{rdb: rdb}
}

func (r *RedisKeyValueRepositoryImpl) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, contract.ErrKeyNotFound
		}
		return nil, err
	}
	return val, nil
}

func (r *RedisKeyValueRepositoryImpl) Set(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, key, value, 0).Err()
}

func (r *RedisKeyValueRepositoryImpl) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, key).Err()
}
