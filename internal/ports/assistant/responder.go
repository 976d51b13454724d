package assistant

import "context"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message es un turno del historial que se le pasa al responder.
type Message struct {
	Role    string
	Content string
}

// Responder produce una única respuesta a partir del historial previo.
// Puede tardar; debe respetar ctx.
type Responder interface {
	Reply(ctx context.Context, history []Message) (string, error)
}

// LastUserMessage devuelve el último contenido con rol user.
func LastUserMessage(history []Message) (string, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleUser {
			return history[i].Content, true
		}
	}
	return "", false
}
