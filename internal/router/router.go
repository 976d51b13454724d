package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-companion/docs"
	"pet-companion/internal/adapters/assistant/echo"
	"pet-companion/internal/adapters/storage/memory"
	"pet-companion/internal/domain/chat"
	"pet-companion/internal/domain/feeding"
	"pet-companion/internal/domain/health"
	"pet-companion/internal/domain/pets"
	"pet-companion/internal/domain/settings"
	"pet-companion/internal/middleware"
	"pet-companion/internal/platform/logger"
	"pet-companion/internal/platform/metrics"
	"pet-companion/internal/platform/state"
	"pet-companion/internal/ports/assistant"
	"pet-companion/internal/ports/kvstore"
)

type Options struct {
	// Opcional: si no viene, todo queda en memoria.
	Store kvstore.Store

	Logger  logger.Logger
	Metrics *metrics.Metrics

	// Opcional: si no viene, el stub echo con su demora por defecto.
	Responder assistant.Responder

	CacheSize int
}

// Router es el http.Handler de la app más lo que hay que cerrar al apagar.
type Router struct {
	http.Handler

	chat      *chat.Service
	accessors []interface{ Close(context.Context) error }
}

func NewRouter(opts Options) (*Router, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	store := opts.Store
	if store == nil {
		store = memory.NewKVStore()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	responder := opts.Responder
	if responder == nil {
		responder = echo.New(echo.DefaultDelay)
	}

	cache, err := state.NewCache(opts.CacheSize)
	if err != nil {
		return nil, err
	}
	stateOpts := []state.Option{state.WithCache(cache), state.WithLogger(log), state.WithMetrics(m)}

	// Accessors: uno por colección, compartiendo caché y métricas.
	petsAcc := state.New[[]pets.Pet](store, pets.StorageKey, []pets.Pet{}, stateOpts...)
	feedingAcc := state.New[[]feeding.Record](store, feeding.StorageKey, []feeding.Record{}, stateOpts...)
	healthAcc := state.New[[]health.Record](store, health.StorageKey, []health.Record{}, stateOpts...)
	chatAcc := state.New[[]chat.Message](store, chat.StorageKey, []chat.Message{}, stateOpts...)

	// Services por módulo
	petsSvc := pets.NewService(petsAcc, log)
	feedingSvc := feeding.NewService(feedingAcc, petsSvc, log)
	healthSvc := health.NewService(healthAcc, petsSvc, log)
	chatSvc := chat.NewService(chatAcc, responder, log)
	settingsSvc := settings.NewService(log)

	// Borrar una mascota borra sus comidas y registros de salud.
	petsSvc.RegisterDependents(feedingSvc, healthSvc)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	feeding.RegisterRoutes(r, feedingSvc)
	health.RegisterRoutes(r, healthSvc)
	chat.RegisterRoutes(r, chatSvc)
	settings.RegisterRoutes(r, settingsSvc)

	return &Router{
		Handler:   r,
		chat:      chatSvc,
		accessors: []interface{ Close(context.Context) error }{petsAcc, feedingAcc, healthAcc, chatAcc},
	}, nil
}

// Close corta la respuesta de chat en curso y vacía las colas de escritura.
// El store lo cierra quien lo abrió.
func (rt *Router) Close(ctx context.Context) error {
	rt.chat.Close()

	var errs []error
	for _, a := range rt.accessors {
		if err := a.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
