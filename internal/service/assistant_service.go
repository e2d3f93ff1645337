package service

import (
	"context"
	"strings"

	"ai-notetaking-be/internal/constant"
	"ai-notetaking-be/internal/dto"
	"ai-notetaking-be/internal/entity"
	"ai-notetaking-be/internal/mapper"
	"ai-notetaking-be/internal/pkg/logger"
	"ai-notetaking-be/pkg/transcript"

	"github.com/google/uuid"
)

const EventAssistantMessage = "assistant.message"

// IAssistantService keeps one chat transcript per session and correlates each
// reply with the request that asked for it.
type IAssistantService interface {
	Submit(ctx context.Context, sessionId uuid.UUID, text string) (*dto.SendMessageResponse, error)
	Transcript(sessionId uuid.UUID) []dto.ChatMessageResponse
	Resolve(ctx context.Context, sessionId, requestId uuid.UUID, text string) bool
	Reset(sessionId uuid.UUID)
}

type assistantService struct {
	registry  *transcript.Registry
	publisher IPublisherService
	events    IEventPublisher
	delivery  SessionDelivery
	logger    logger.ILogger
}

func NewAssistantService(
	publisher IPublisherService,
	events IEventPublisher,
	delivery SessionDelivery,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		registry:  transcript.NewRegistry(openingMessages),
		publisher: publisher,
		events:    events,
		delivery:  delivery,
		logger:    log,
	}
}

func openingMessages() []entity.ChatMessage {
	return []entity.ChatMessage{entity.NewAssistantMessage(constant.AssistantGreeting)}
}

// Submit appends the user's text and a pending placeholder, then hands the
// prompt to the background consumer. Blank input changes nothing.
func (s *assistantService) Submit(ctx context.Context, sessionId uuid.UUID, text string) (*dto.SendMessageResponse, error) {
	t := s.registry.Get(sessionId)

	if strings.TrimSpace(text) == "" {
		return &dto.SendMessageResponse{Messages: mapper.ChatMessagesToResponse(t.Messages())}, nil
	}

	requestId := t.Submit(text)

	err := s.publisher.SendMessage(ctx, dto.AssistantPromptMessage{
		SessionId: sessionId,
		RequestId: requestId,
		Prompt:    text,
	})
	if err != nil {
		// the placeholder must not stay pending forever
		s.logger.Error("AssistantService", "Failed to dispatch prompt", map[string]interface{}{
			"session_id": sessionId,
			"request_id": requestId,
			"error":      err,
		})
		t.Resolve(requestId, constant.AssistantErrorMessage)
	}

	return &dto.SendMessageResponse{
		RequestId: &requestId,
		Messages:  mapper.ChatMessagesToResponse(t.Messages()),
	}, nil
}

func (s *assistantService) Transcript(sessionId uuid.UUID) []dto.ChatMessageResponse {
	return mapper.ChatMessagesToResponse(s.registry.Get(sessionId).Messages())
}

// Resolve swaps the pending entry for requestId with the assistant's text.
// Replies for transcripts that no longer exist, or for requests already
// resolved, are dropped.
func (s *assistantService) Resolve(ctx context.Context, sessionId, requestId uuid.UUID, text string) bool {
	t, ok := s.registry.Lookup(sessionId)
	if !ok || !t.Resolve(requestId, text) {
		s.logger.Debug("AssistantService", "Dropped reply without a pending request", map[string]interface{}{
			"session_id": sessionId,
			"request_id": requestId,
		})
		return false
	}

	var resolved entity.ChatMessage
	for _, m := range t.Messages() {
		if m.RequestId == requestId {
			resolved = m
			break
		}
	}

	if s.delivery != nil {
		s.delivery.Deliver(sessionId, EventAssistantMessage, dto.AssistantResolvedEvent{
			RequestId: requestId,
			Message:   mapper.ChatMessageToResponse(resolved),
		})
	}

	publishEvent(ctx, s.events, s.logger, constant.EventAssistantResolved, map[string]interface{}{
		"session_id": sessionId.String(),
		"request_id": requestId.String(),
	})
	return true
}

func (s *assistantService) Reset(sessionId uuid.UUID) {
	s.registry.Drop(sessionId)
}
