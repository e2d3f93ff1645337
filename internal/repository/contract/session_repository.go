package contract

import (
	"ai-notetaking-be/internal/entity"

	"github.com/google/uuid"
)

// SessionRepository holds live login sessions. Entries are ephemeral.
type SessionRepository interface {
	Save(session *entity.Session)
	Get(sessionId uuid.UUID) (*entity.Session, bool)
	Delete(sessionId uuid.UUID)
	// OnRemoved is called with the id of every session that is deleted or expires.
	OnRemoved(fn func(sessionId uuid.UUID))
}

// ToastRepository holds the one transient notification a session may show.
type ToastRepository interface {
	Put(sessionId uuid.UUID, toast entity.Toast)
	Current(sessionId uuid.UUID) (*entity.Toast, bool)
	Clear(sessionId uuid.UUID)
}
