package modal

import "sync"

// Modal controla visibilidad más un payload opcional (p.ej. el registro en edición).
type Modal[T any] struct {
	mu      sync.Mutex
	visible bool
	data    T
	hasData bool
}

func New[T any]() *Modal[T] {
	return &Modal[T]{}
}

// Open muestra el modal y deja el payload que hubiera.
func (m *Modal[T]) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = true
}

func (m *Modal[T]) OpenWith(data T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = true
	m.data = data
	m.hasData = true
}

// Close oculta y siempre limpia el payload.
func (m *Modal[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	m.visible = false
	m.data = zero
	m.hasData = false
}

func (m *Modal[T]) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}

func (m *Modal[T]) Data() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data, m.hasData
}
