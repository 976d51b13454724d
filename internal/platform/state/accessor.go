// Package state implementa el acceso tipado a una colección persistida bajo
// una clave del store clave/valor: caché en memoria, serialización JSON y una
// cola de escritura por clave.
//
// Las escrituras salen en orden de emisión desde una sola goroutine por
// accessor y siempre con el valor más nuevo pendiente, así que una escritura
// vieja nunca pisa a una más reciente en el store.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pet-companion/internal/platform/logger"
	"pet-companion/internal/platform/metrics"
	"pet-companion/internal/ports/kvstore"
)

var (
	ErrDecode = errors.New("state: malformed stored value")
	ErrClosed = errors.New("state: accessor closed")

	// ErrUnavailable: el store no pudo leerse y el valor sigue sin resolver.
	ErrUnavailable = errors.New("state: store unavailable")
)

type options struct {
	cache   *Cache
	log     logger.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*options)

// WithCache comparte una caché entre accessors. Sin esta opción cada accessor
// tiene la suya.
func WithCache(c *Cache) Option {
	return func(o *options) { o.cache = c }
}

func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

type pendingWrite[T any] struct {
	seq   uint64
	value T
}

// Accessor da get/set sobre una colección tipada guardada bajo key.
type Accessor[T any] struct {
	key   string
	store kvstore.Store
	def   T
	opts  options

	mu      sync.Mutex
	cond    *sync.Cond
	value   T
	loading bool
	issued  uint64
	done    uint64
	pending *pendingWrite[T]
	lastErr error
	closed  bool

	wake    chan struct{}
	stop    chan struct{}
	stopped chan struct{}
}

// New crea el accessor y arranca su goroutine de escritura.
// Hay que llamar Close para liberarla.
func New[T any](store kvstore.Store, key string, defaultValue T, opts ...Option) *Accessor[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cache == nil {
		o.cache = mustCache(1)
	}
	if o.log == nil {
		o.log = logger.Nop()
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer("pet-companion/state")
	}
	o.log = o.log.With(map[string]any{"component": "state", "key": key})

	a := &Accessor[T]{
		key:     key,
		store:   store,
		def:     defaultValue,
		opts:    o,
		value:   defaultValue,
		loading: true,
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	a.cond = sync.NewCond(&a.mu)

	go a.run()
	return a
}

func (a *Accessor[T]) Key() string { return a.key }

// Loading es true hasta que un Load resuelve (con dato, clave ausente o JSON
// inválido). Un error de lectura del store no resuelve: el próximo Load reintenta.
func (a *Accessor[T]) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// Value devuelve el valor en memoria actual.
func (a *Accessor[T]) Value() T {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// Load devuelve el valor de la caché si está; si no, lee el store.
// Clave ausente o JSON inválido => default, sin poblar la caché.
// Error de lectura => default, y el accessor sigue en Loading.
func (a *Accessor[T]) Load(ctx context.Context) T {
	v, _ := a.load(ctx)
	return v
}

// Resolve es Load para quien va a escribir: si el valor todavía no se pudo
// leer del store devuelve ErrUnavailable en vez de un default que pisaría lo guardado.
func (a *Accessor[T]) Resolve(ctx context.Context) (T, error) {
	a.mu.Lock()
	if !a.loading {
		v := a.value
		a.mu.Unlock()
		return v, nil
	}
	a.mu.Unlock()
	return a.load(ctx)
}

func (a *Accessor[T]) load(ctx context.Context) (T, error) {
	ctx, span := a.opts.tracer.Start(ctx, "state.load", trace.WithAttributes(attribute.String("state.key", a.key)))
	defer span.End()

	if v, ok := cached[T](a.opts.cache, a.key); ok {
		a.opts.metrics.CacheHit()
		span.SetAttributes(attribute.Bool("state.cache_hit", true))
		a.mu.Lock()
		a.value = v
		a.loading = false
		a.mu.Unlock()
		return v, nil
	}
	a.opts.metrics.CacheMiss()

	v, err := a.read(ctx)
	switch {
	case err == nil:
	case errors.Is(err, errKeyMissing):
		return a.fallback(), nil
	case errors.Is(err, ErrDecode):
		span.RecordError(err)
		return a.fallback(), nil
	default:
		span.RecordError(err)
		return a.unresolved(err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.issued > 0 {
		// un Set ganó la carrera contra la lectura: manda memoria
		a.loading = false
		return a.value, nil
	}
	a.opts.cache.Add(a.key, v)
	a.value = v
	a.loading = false
	return v, nil
}

// Refresh descarta la caché de la clave y vuelve a leer del store.
func (a *Accessor[T]) Refresh(ctx context.Context) T {
	a.opts.cache.Remove(a.key)
	a.mu.Lock()
	a.loading = true
	a.mu.Unlock()
	return a.Load(ctx)
}

func (a *Accessor[T]) read(ctx context.Context) (T, error) {
	var zero T

	raw, ok, err := a.store.Get(ctx, a.key)
	if err != nil {
		a.opts.metrics.StoreRead(a.key, "error")
		a.opts.log.Error("storage read failed", map[string]any{"err": err})
		return zero, err
	}
	if !ok {
		a.opts.metrics.StoreRead(a.key, "missing")
		return zero, errKeyMissing
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		a.opts.metrics.StoreRead(a.key, "decode_error")
		err = fmt.Errorf("%w: %v", ErrDecode, err)
		a.opts.log.Warn("stored value ignored", map[string]any{"err": err})
		return zero, err
	}
	a.opts.metrics.StoreRead(a.key, "ok")
	return v, nil
}

var errKeyMissing = errors.New("state: key not found")

// unresolved deja loading en true salvo que un Set ya haya fijado el valor.
func (a *Accessor[T]) unresolved(err error) (T, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.issued > 0 {
		a.loading = false
		return a.value, nil
	}
	return a.def, fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (a *Accessor[T]) fallback() T {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = false
	if a.issued == 0 {
		a.value = a.def
	}
	return a.def
}

// Set es la forma literal: reemplaza el valor tal cual.
// Si v se calculó a partir de un Value() viejo, puede perder updates
// intermedios; para read-modify-write usar Update.
func (a *Accessor[T]) Set(v T) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.apply(v)
}

// Update aplica fn sobre el último valor bajo el lock del accessor, así dos
// updates seguidos se ven entre sí. fn no debe llamar al accessor.
func (a *Accessor[T]) Update(fn func(prev T) T) T {
	a.mu.Lock()
	defer a.mu.Unlock()
	next := fn(a.value)
	a.apply(next)
	return next
}

// apply requiere a.mu.
func (a *Accessor[T]) apply(v T) {
	a.value = v
	a.loading = false
	a.opts.cache.Add(a.key, v)

	a.issued++
	if a.closed {
		a.done = a.issued
		a.lastErr = ErrClosed
		a.opts.log.Warn("set after close not persisted", map[string]any{"seq": a.issued})
		a.cond.Broadcast()
		return
	}
	a.pending = &pendingWrite[T]{seq: a.issued, value: v}
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

func (a *Accessor[T]) run() {
	defer close(a.stopped)
	for {
		select {
		case <-a.wake:
			a.drain()
		case <-a.stop:
			a.drain()
			return
		}
	}
}

// drain persiste el pendiente más nuevo hasta que no quede nada.
// Los valores intermedios que se acumularon mientras escribíamos se descartan.
func (a *Accessor[T]) drain() {
	for {
		a.mu.Lock()
		w := a.pending
		a.pending = nil
		a.mu.Unlock()
		if w == nil {
			return
		}

		err := a.persist(w)

		a.mu.Lock()
		// un Set posterior a Close ya pudo adelantar done; no retroceder
		if w.seq > a.done {
			a.done = w.seq
			a.lastErr = err
		}
		a.cond.Broadcast()
		a.mu.Unlock()
	}
}

func (a *Accessor[T]) persist(w *pendingWrite[T]) error {
	ctx, span := a.opts.tracer.Start(context.Background(), "state.persist", trace.WithAttributes(
		attribute.String("state.key", a.key),
		attribute.Int64("state.seq", int64(w.seq)),
	))
	defer span.End()

	b, err := json.Marshal(w.value)
	if err == nil {
		err = a.store.Set(ctx, a.key, string(b))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist failed")
		a.opts.metrics.StoreWrite(a.key, "error")
		// no hay rollback: la memoria sigue con el valor nuevo
		a.opts.log.Error("storage write failed", map[string]any{"seq": w.seq, "err": err})
		return err
	}
	a.opts.metrics.StoreWrite(a.key, "ok")
	return nil
}

// LastWriteError es el resultado de la última escritura intentada.
func (a *Accessor[T]) LastWriteError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// Flush espera a que todo lo emitido hasta ahora se haya intentado escribir.
func (a *Accessor[T]) Flush(ctx context.Context) error {
	stopWatch := context.AfterFunc(ctx, func() {
		a.mu.Lock()
		a.cond.Broadcast()
		a.mu.Unlock()
	})
	defer stopWatch()

	a.mu.Lock()
	defer a.mu.Unlock()
	target := a.issued
	for a.done < target {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.cond.Wait()
	}
	return nil
}

// Close hace Flush y detiene la goroutine de escritura. Es idempotente.
func (a *Accessor[T]) Close(ctx context.Context) error {
	err := a.Flush(ctx)

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return err
	}
	a.closed = true
	a.mu.Unlock()

	close(a.stop)
	select {
	case <-a.stopped:
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	}
	return err
}
