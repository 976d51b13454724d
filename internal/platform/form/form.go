// Package form guarda el estado de un formulario en edición junto con la
// línea base contra la que se resetea.
package form

import "sync"

// Field apunta a un campo de T. Se usa para updates chequeados en compilación:
//
//	form.UpdateField(f, func(p *PetForm) *string { return &p.Name }, "Rex")
type Field[T, V any] func(*T) *V

// Form contiene el valor actual y la base inicial. La base no cambia nunca;
// SetForm solo toca el valor actual.
type Form[T any] struct {
	mu      sync.Mutex
	initial T
	data    T
}

func New[T any](initial T) *Form[T] {
	return &Form[T]{initial: initial, data: initial}
}

func (f *Form[T]) Data() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// UpdateField reemplaza un solo campo.
func UpdateField[T, V any](f *Form[T], field Field[T, V], v V) {
	f.mu.Lock()
	defer f.mu.Unlock()
	*field(&f.data) = v
}

// UpdateFields aplica varios cambios en un solo paso.
func (f *Form[T]) UpdateFields(fn func(*T)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.data)
}

func (f *Form[T]) SetForm(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = v
}

// ResetForm vuelve a la base de construcción, no al último SetForm.
func (f *Form[T]) ResetForm() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = f.initial
}
