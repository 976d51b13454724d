package prompt

import (
	"context"
	"errors"
)

var ErrNotConfirmed = errors.New("not confirmed")

// Confirmer pide al usuario confirmar una acción destructiva (borrar, limpiar).
type Confirmer interface {
	Confirm(ctx context.Context, title, message string) (bool, error)
}

// ConfirmFunc adapta una función a Confirmer.
type ConfirmFunc func(ctx context.Context, title, message string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, title, message string) (bool, error) {
	return f(ctx, title, message)
}

// Static responde siempre lo mismo. Útil en HTTP (?confirm=true) y tests.
type Static bool

func (s Static) Confirm(context.Context, string, string) (bool, error) {
	return bool(s), nil
}

// DeclinedError conserva el texto del prompt para que la UI/HTTP lo muestre.
type DeclinedError struct {
	Title   string
	Message string
}

func (e *DeclinedError) Error() string {
	return "not confirmed: " + e.Title
}

func (e *DeclinedError) Unwrap() error { return ErrNotConfirmed }

// Ask pregunta y devuelve nil sólo si el usuario confirmó.
// Un confirmer nil equivale a "no".
func Ask(ctx context.Context, c Confirmer, title, message string) error {
	if c == nil {
		return &DeclinedError{Title: title, Message: message}
	}
	ok, err := c.Confirm(ctx, title, message)
	if err != nil {
		return err
	}
	if !ok {
		return &DeclinedError{Title: title, Message: message}
	}
	return nil
}
