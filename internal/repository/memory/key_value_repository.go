package memory

import (
	"context"

	"ai-notetaking-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// KeyValueRepository is the process-local durable store used in development and tests.
type KeyValueRepository struct {
	cache *cache.Cache
}

var _ contract.KeyValueRepository = (*KeyValueRepository)(nil)

func NewKeyValueRepository() *KeyValueRepository {
	return &KeyValueRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *KeyValueRepository) Get(_ context.Context, key string) ([]byte, error) {
	x, found := r.cache.Get(key)
	if !found {
		return nil, contract.ErrKeyNotFound
	}
	stored := x.([]byte)
	out := make([]byte, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *KeyValueRepository) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	r.cache.Set(key, stored, cache.NoExpiration)
	return nil
}

func (r *KeyValueRepository) Delete(_ context.Context, key string) error {
	r.cache.Delete(key)
	return nil
}
