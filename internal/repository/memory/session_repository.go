package memory

import (
	"time"

	"ai-notetaking-be/internal/entity"
	"ai-notetaking-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

var _ contract.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository keeps sessions for ttl after their last lookup. Expired
// sessions are purged every ten minutes, or every ttl when that is shorter.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	cleanup := 10 * time.Minute
	if ttl > 0 && ttl < cleanup {
		cleanup = ttl
	}
	return &SessionRepository{
		cache: cache.New(ttl, cleanup),
	}
}

// OnRemoved registers fn to run whenever a session leaves the store, whether
// deleted or purged after expiry. fn runs outside the store's lock.
func (r *SessionRepository) OnRemoved(fn func(sessionId uuid.UUID)) {
	r.cache.OnEvicted(func(key string, _ interface{}) {
		id, err := uuid.Parse(key)
		if err != nil {
			return
		}
		fn(id)
	})
}

func (r *SessionRepository) Save(session *entity.Session) {
	r.cache.Set(session.Id.String(), session, cache.DefaultExpiration)
}

// Get returns the session and slides its expiry forward.
func (r *SessionRepository) Get(sessionId uuid.UUID) (*entity.Session, bool) {
	x, found := r.cache.Get(sessionId.String())
	if !found {
		return nil, false
	}
	session := x.(*entity.Session)
	r.cache.Set(sessionId.String(), session, cache.DefaultExpiration)
	return session, true
}

func (r *SessionRepository) Delete(sessionId uuid.UUID) {
	r.cache.Delete(sessionId.String())
}
