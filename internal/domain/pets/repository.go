package pets

import "context"

// DependentStore es un módulo con registros que referencian petId
// (feeding, health). Al borrar una mascota se borran también esos registros.
type DependentStore interface {
	DeleteByPet(ctx context.Context, petID string) (int, error)
}

// Lookup es lo que feeding y health necesitan de pets, sin importar el
// paquete entero (evita ciclos pets <-> feeding).
type Lookup interface {
	Exists(ctx context.Context, petID string) bool
	FirstID(ctx context.Context) (string, bool)
}
