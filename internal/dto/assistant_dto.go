package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	Text string `json:"text"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID  `json:"id"`
	Kind      string     `json:"kind"`
	Text      string     `json:"text"`
	RequestId *uuid.UUID `json:"request_id,omitempty"`
	Rendered  string     `json:"rendered"`
	CreatedAt time.Time  `json:"created_at"`
}

// SendMessageResponse has a nil RequestId when the submission was blank and nothing was sent.
type SendMessageResponse struct {
	RequestId *uuid.UUID            `json:"request_id"`
	Messages  []ChatMessageResponse `json:"messages"`
}

// AssistantPromptMessage is the payload published on the prompt topic.
type AssistantPromptMessage struct {
	SessionId uuid.UUID `json:"session_id"`
	RequestId uuid.UUID `json:"request_id"`
	Prompt    string    `json:"prompt"`
}

// AssistantResolvedEvent is pushed to the session's websocket clients.
type AssistantResolvedEvent struct {
	RequestId uuid.UUID           `json:"request_id"`
	Message   ChatMessageResponse `json:"message"`
}
