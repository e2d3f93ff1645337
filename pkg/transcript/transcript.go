// Package transcript holds the in-memory chat log of a mounted assistant panel.
package transcript

import (
	"sync"

	"ai-notetaking-be/internal/entity"

	"github.com/google/uuid"
)

// Transcript is an ordered, append-only message log. The only in-place edit is
// replacing a Pending entry with the Assistant entry that answers it.
type Transcript struct {
	mu       sync.Mutex
	messages []entity.ChatMessage
}

// New starts a transcript with the given opening messages.
func New(opening ...entity.ChatMessage) *Transcript {
	t := &Transcript{messages: make([]entity.ChatMessage, 0, len(opening)+8)}
	t.messages = append(t.messages, opening...)
	return t
}

// Submit appends the user's text and a Pending placeholder in one step and
// returns the request id the placeholder waits on.
func (t *Transcript) Submit(text string) uuid.UUID {
	requestId := uuid.New()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.messages = append(t.messages,
		entity.NewUserMessage(text),
		entity.NewPendingMessage(requestId),
	)
	return requestId
}

// Resolve replaces the Pending entry waiting on requestId. It reports false when
// no such entry exists, in which case the transcript is left unchanged.
func (t *Transcript) Resolve(requestId uuid.UUID, text string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.messages {
		m := t.messages[i]
		if m.IsPending() && m.RequestId == requestId {
			resolved := entity.NewAssistantMessage(text)
			resolved.Id = m.Id
			resolved.RequestId = requestId
			t.messages[i] = resolved
			return true
		}
	}
	return false
}

// Messages returns a copy of the log.
func (t *Transcript) Messages() []entity.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]entity.ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}

// PendingCount reports how many requests are still outstanding.
func (t *Transcript) PendingCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, m := range t.messages {
		if m.IsPending() {
			n++
		}
	}
	return n
}
