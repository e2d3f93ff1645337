package memory

import (
	"time"

	"ai-notetaking-be/internal/entity"
	"ai-notetaking-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ToastRepository auto-dismisses each toast after ttl.
type ToastRepository struct {
	cache *cache.Cache
}

var _ contract.ToastRepository = (*ToastRepository)(nil)

func NewToastRepository(ttl time.Duration) *ToastRepository {
	return &ToastRepository{
		cache: cache.New(ttl, time.Minute),
	}
}

func (r *ToastRepository) Put(sessionId uuid.UUID, toast entity.Toast) {
	r.cache.Set(sessionId.String(), toast, cache.DefaultExpiration)
}

func (r *ToastRepository) Current(sessionId uuid.UUID) (*entity.Toast, bool) {
	x, found := r.cache.Get(sessionId.String())
	if !found {
		return nil, false
	}
	toast := x.(entity.Toast)
	return &toast, true
}

func (r *ToastRepository) Clear(sessionId uuid.UUID) {
	r.cache.Delete(sessionId.String())
}
