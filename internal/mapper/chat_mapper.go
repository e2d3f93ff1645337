package mapper

import (
	"ai-notetaking-be/internal/dto"
	"ai-notetaking-be/internal/entity"
	"ai-notetaking-be/pkg/transcript"

	"github.com/google/uuid"
)

func ChatMessageToResponse(m entity.ChatMessage) dto.ChatMessageResponse {
	res := dto.ChatMessageResponse{
		Id:        m.Id,
		Kind:      m.Kind.String(),
		Text:      m.Text,
		Rendered:  transcript.Render(m),
		CreatedAt: m.CreatedAt,
	}
	if m.RequestId != uuid.Nil {
		requestId := m.RequestId
		res.RequestId = &requestId
	}
	return res
}

func ChatMessagesToResponse(messages []entity.ChatMessage) []dto.ChatMessageResponse {
	res := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		res = append(res, ChatMessageToResponse(m))
	}
	return res
}
