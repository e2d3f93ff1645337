package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is anything published on the event bus.
type Event interface {
	// EventID is unique per event and doubles as the broker's dedup key.
	EventID() string
	// EventType is the upper-case code, e.g. "USER_LOGIN".
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Id         uuid.UUID
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

// New stamps an event with a fresh id and the current time.
func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Id:         uuid.New(),
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func (e BaseEvent) EventID() string      { return e.Id.String() }
func (e BaseEvent) EventType() string    { return e.Type }
func (e BaseEvent) Timestamp() time.Time { return e.OccurredAt }

func (e BaseEvent) Payload() map[string]interface{} {
	if e.Data == nil {
		return map[string]interface{}{}
	}
	return e.Data
}
