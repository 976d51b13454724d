package kvstore

import (
	"context"
	"errors"
)

var ErrClosed = errors.New("kvstore: closed")

// Store es el almacenamiento clave/valor persistente del dispositivo.
// Cada colección se guarda completa como texto bajo una sola clave.
type Store interface {
	// Get devuelve (valor, true, nil) si la clave existe; ("", false, nil) si no.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
