package service

import (
	"context"
	"encoding/json"

	"ai-notetaking-be/internal/dto"
	"ai-notetaking-be/internal/pkg/logger"
	"ai-notetaking-be/pkg/assistant"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// PromptResolver receives the text produced for an outstanding request.
type PromptResolver interface {
	Resolve(ctx context.Context, sessionId, requestId uuid.UUID, text string) bool
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	generator  assistant.Generator
	resolver   PromptResolver
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	generator assistant.Generator,
	resolver PromptResolver,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		generator:  generator,
		resolver:   resolver,
		logger:     log,
	}
}

// Consume subscribes to the prompt topic and returns; messages are handled in
// the background until ctx is cancelled.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			// Acked on receipt so one slow generation does not hold back the
			// next prompt. Failures end up as text in the transcript, never redelivered.
			msg.Ack()
			go cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AssistantPromptMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal prompt message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err,
		})
		return
	}

	cs.logger.Debug("ConsumerService", "Processing prompt", map[string]interface{}{
		"session_id": payload.SessionId,
		"request_id": payload.RequestId,
	})

	text := cs.generator.Generate(ctx, payload.Prompt)
	cs.resolver.Resolve(ctx, payload.SessionId, payload.RequestId, text)
}
