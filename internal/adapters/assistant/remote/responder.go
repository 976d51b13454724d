// Package remote manda el último mensaje del usuario al endpoint /ai/assist
// del backend y devuelve su respuesta.
package remote

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"pet-companion/internal/platform/httpclient"
	"pet-companion/internal/ports/assistant"
)

const assistPath = "/ai/assist"

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type chatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// Responder conserva el session_id que devuelve el backend entre llamadas.
type Responder struct {
	client *httpclient.Client

	mu        sync.Mutex
	sessionID string
}

func New(baseURL, token string, timeout time.Duration) (*Responder, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("remote assistant: base url required")
	}
	c, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	if token != "" {
		c.Headers = map[string]string{"Authorization": "Bearer " + token}
	}
	return &Responder{client: c}, nil
}

func (r *Responder) Reply(ctx context.Context, history []assistant.Message) (string, error) {
	text, ok := assistant.LastUserMessage(history)
	if !ok {
		return "", errors.New("remote assistant: no user message")
	}

	r.mu.Lock()
	req := chatRequest{Message: text, SessionID: r.sessionID}
	r.mu.Unlock()

	var out chatResponse
	if err := r.client.DoJSON(ctx, http.MethodPost, assistPath, nil, req, &out); err != nil {
		return "", err
	}

	if out.SessionID != "" {
		r.mu.Lock()
		r.sessionID = out.SessionID
		r.mu.Unlock()
	}
	return out.Response, nil
}

// SessionID es la sesión actual ("" antes de la primera respuesta).
func (r *Responder) SessionID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessionID
}
