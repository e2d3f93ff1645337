package service

import (
	"context"

	"ai-notetaking-be/internal/pkg/logger"
	"ai-notetaking-be/pkg/events"

	"github.com/google/uuid"
)

// IEventPublisher is the outbound event bus. *nats.Publisher satisfies it.
type IEventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// SessionDelivery pushes a typed payload to every live connection of a session.
// The websocket hub satisfies it.
type SessionDelivery interface {
	Deliver(sessionId uuid.UUID, eventType string, data interface{})
}

// Broadcaster pushes a typed payload to every live connection.
type Broadcaster interface {
	Broadcast(eventType string, data interface{})
}

// publishEvent is fire-and-forget: a missing or failing bus never fails the caller.
func publishEvent(ctx context.Context, pub IEventPublisher, log logger.ILogger, eventType string, data map[string]interface{}) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, events.New(eventType, data)); err != nil {
		log.Warn("EventPublisher", "Failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
