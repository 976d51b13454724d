// Package ids genera los ids de las entidades locales.
package ids

import "github.com/google/uuid"

// New devuelve un UUIDv7: prefijo de timestamp en ms + bits aleatorios.
// google/uuid mantiene un contador monotónico dentro del mismo ms, así que
// dos creaciones seguidas (p.ej. dos mensajes de chat en el mismo tick) no colisionan.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		// sólo falla si el lector de aleatoriedad falla
		return uuid.NewString()
	}
	return id.String()
}
