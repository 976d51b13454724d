// Package echo es el responder simulado: espera un rato y devuelve el último
// mensaje del usuario con prefijo "AI: ".
package echo

import (
	"context"
	"time"

	"pet-companion/internal/ports/assistant"
)

const (
	DefaultDelay = 1200 * time.Millisecond
	Prefix       = "AI: "
)

type Responder struct {
	Delay time.Duration
}

func New(delay time.Duration) *Responder {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Responder{Delay: delay}
}

func (r *Responder) Reply(ctx context.Context, history []assistant.Message) (string, error) {
	text, _ := assistant.LastUserMessage(history)

	if r.Delay > 0 {
		t := time.NewTimer(r.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-t.C:
		}
	}
	return Prefix + text, nil
}
