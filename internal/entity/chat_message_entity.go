package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MessageKind tags the variant a ChatMessage holds.
type MessageKind int

const (
	MessageKindUser MessageKind = iota + 1
	MessageKindAssistant
	MessageKindPending
)

func (k MessageKind) String() string {
	switch k {
	case MessageKindUser:
		return "user"
	case MessageKindAssistant:
		return "assistant"
	case MessageKindPending:
		return "pending"
	default:
		return fmt.Sprintf("MessageKind(%d)", int(k))
	}
}

func (k MessageKind) MarshalText() ([]byte, error) {
	switch k {
	case MessageKindUser, MessageKindAssistant, MessageKindPending:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown message kind %d", int(k))
	}
}

func (k *MessageKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "user":
		*k = MessageKindUser
	case "assistant":
		*k = MessageKindAssistant
	case "pending":
		*k = MessageKindPending
	default:
		return fmt.Errorf("unknown message kind %q", string(b))
	}
	return nil
}

// ChatMessage is one transcript entry. RequestId is set on Pending entries and
// carried over to the Assistant entry that replaces them.
type ChatMessage struct {
	Id        uuid.UUID
	Kind      MessageKind
	Text      string
	RequestId uuid.UUID
	CreatedAt time.Time
}

func NewUserMessage(text string) ChatMessage {
	return ChatMessage{Id: uuid.New(), Kind: MessageKindUser, Text: text, CreatedAt: time.Now()}
}

func NewAssistantMessage(text string) ChatMessage {
	return ChatMessage{Id: uuid.New(), Kind: MessageKindAssistant, Text: text, CreatedAt: time.Now()}
}

func NewPendingMessage(requestId uuid.UUID) ChatMessage {
	return ChatMessage{Id: uuid.New(), Kind: MessageKindPending, RequestId: requestId, CreatedAt: time.Now()}
}

func (m ChatMessage) IsPending() bool {
	return m.Kind == MessageKindPending
}
