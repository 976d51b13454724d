package chat

import (
	"time"

	"pet-companion/internal/ports/assistant"
)

// @Enum user, assistant
type Role string

const (
	RoleUser      Role = assistant.RoleUser
	RoleAssistant Role = assistant.RoleAssistant
)

// Message se guarda bajo CHAT_MESSAGES_KEY. Timestamp se serializa RFC3339Nano en UTC.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func toHistory(msgs []Message) []assistant.Message {
	out := make([]assistant.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, assistant.Message{Role: string(m.Role), Content: m.Content})
	}
	return out
}
