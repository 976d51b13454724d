package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pet-companion/internal/platform/ids"
	"pet-companion/internal/platform/logger"
	"pet-companion/internal/platform/state"
	"pet-companion/internal/ports/assistant"
	"pet-companion/internal/ports/prompt"
)

const StorageKey = "CHAT_MESSAGES_KEY"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrBusy         = errors.New("assistant is still replying")
)

type Service struct {
	messages  *state.Accessor[[]Message]
	responder assistant.Responder
	log       logger.Logger
	now       func() time.Time

	mu sync.Mutex
	// pending se cierra cuando termina la respuesta en curso; nil si no hay ninguna.
	pending chan struct{}

	// replyCtx vive hasta Close; las respuestas no dependen del request que las pidió.
	replyCtx context.Context
	cancel   context.CancelFunc
}

func NewService(acc *state.Accessor[[]Message], responder assistant.Responder, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		messages:  acc,
		responder: responder,
		log:       log.With(map[string]any{"module": "chat"}),
		now:       func() time.Time { return time.Now().UTC() },
		replyCtx:  ctx,
		cancel:    cancel,
	}
}

func (s *Service) list(ctx context.Context) []Message {
	if s.messages.Loading() {
		return s.messages.Load(ctx)
	}
	return s.messages.Value()
}

func (s *Service) Messages(ctx context.Context) []Message {
	msgs := s.list(ctx)
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Wait bloquea hasta que termine la respuesta en curso, si hay una.
func (s *Service) Wait() {
	s.mu.Lock()
	done := s.pending
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Submit agrega el mensaje del usuario y dispara una única respuesta en segundo plano.
func (s *Service) Submit(ctx context.Context, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, fmt.Errorf("%w: Message must not be empty.", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		return Message{}, ErrBusy
	}
	if _, err := s.messages.Resolve(ctx); err != nil {
		return Message{}, err
	}

	msg := Message{ID: ids.New(), Role: RoleUser, Content: text, Timestamp: s.now()}
	history := s.messages.Update(func(prev []Message) []Message {
		next := make([]Message, 0, len(prev)+1)
		next = append(next, prev...)
		return append(next, msg)
	})

	done := make(chan struct{})
	s.pending = done
	go s.reply(toHistory(history), done)
	return msg, nil
}

func (s *Service) reply(history []assistant.Message, done chan struct{}) {
	defer s.finish(done)

	text, err := s.responder.Reply(s.replyCtx, history)
	if err != nil {
		s.log.Error("assistant reply failed", map[string]any{"err": err.Error()})
		return
	}

	msg := Message{ID: ids.New(), Role: RoleAssistant, Content: text, Timestamp: s.now()}
	s.messages.Update(func(prev []Message) []Message {
		next := make([]Message, 0, len(prev)+1)
		next = append(next, prev...)
		return append(next, msg)
	})
}

func (s *Service) finish(done chan struct{}) {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
	close(done)
}

// Clear vacía el historial si el usuario confirma.
func (s *Service) Clear(ctx context.Context, c prompt.Confirmer) error {
	if err := prompt.Ask(ctx, c, "Clear chat", "Are you sure you want to clear the chat history?"); err != nil {
		return err
	}
	s.messages.Set([]Message{})
	s.log.Info("chat cleared", nil)
	return nil
}

// Close cancela la respuesta en curso y espera a que termine.
func (s *Service) Close() {
	s.cancel()
	s.Wait()
}
