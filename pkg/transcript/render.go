package transcript

import (
	"html"
	"strings"

	"ai-notetaking-be/internal/entity"
)

// PendingIndicator is the markup shown while a reply is outstanding.
const PendingIndicator = `<span class="typing" role="status" aria-label="Assistant is typing"><i></i><i></i><i></i></span>`

// Render turns a message into safe HTML. Assistant text gets its newlines
// expanded to <br/>; no other formatting is interpreted.
func Render(m entity.ChatMessage) string {
	switch m.Kind {
	case entity.MessageKindUser:
		return html.EscapeString(m.Text)
	case entity.MessageKindAssistant:
		return strings.ReplaceAll(html.EscapeString(m.Text), "\n", "<br/>")
	case entity.MessageKindPending:
		return PendingIndicator
	default:
		return ""
	}
}
