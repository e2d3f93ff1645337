package transcript

import (
	"sync"

	"ai-notetaking-be/internal/entity"

	"github.com/google/uuid"
)

// Registry keeps one transcript per session.
type Registry struct {
	mu          sync.RWMutex
	transcripts map[uuid.UUID]*Transcript
	opening     func() []entity.ChatMessage
}

// NewRegistry creates a registry whose transcripts start with the messages
// returned by opening. opening may be nil.
func NewRegistry(opening func() []entity.ChatMessage) *Registry {
	return &Registry{
		transcripts: make(map[uuid.UUID]*Transcript),
		opening:     opening,
	}
}

// Get returns the session's transcript, creating it on first use.
func (r *Registry) Get(sessionId uuid.UUID) *Transcript {
	r.mu.RLock()
	t, ok := r.transcripts[sessionId]
	r.mu.RUnlock()
	if ok {
		return t
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.transcripts[sessionId]; ok {
		return t
	}
	var opening []entity.ChatMessage
	if r.opening != nil {
		opening = r.opening()
	}
	t = New(opening...)
	r.transcripts[sessionId] = t
	return t
}

// Lookup returns the session's transcript without creating one.
func (r *Registry) Lookup(sessionId uuid.UUID) (*Transcript, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transcripts[sessionId]
	return t, ok
}

// Drop forgets the session's transcript.
func (r *Registry) Drop(sessionId uuid.UUID) {
	r.mu.Lock()
	delete(r.transcripts, sessionId)
	r.mu.Unlock()
}
