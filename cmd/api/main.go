package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-companion/internal/adapters/assistant/echo"
	"pet-companion/internal/adapters/assistant/remote"
	"pet-companion/internal/adapters/storage"
	"pet-companion/internal/platform/config"
	"pet-companion/internal/platform/logger"
	"pet-companion/internal/platform/metrics"
	"pet-companion/internal/platform/otel"
	"pet-companion/internal/ports/assistant"
	"pet-companion/internal/router"
)

// @title Pet Companion API
// @version 1.0
// @description Estado local de la app: mascotas, comidas, salud, chat y ajustes.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, cfg.AppName, cfg.OTelEndpoint, cfg.OTelEnabled)
	if err != nil {
		log.Warn("tracing disabled", map[string]any{"err": err.Error()})
	}

	store, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		log.Error("open store", map[string]any{"engine": cfg.Store.Engine, "err": err.Error()})
		os.Exit(1)
	}
	defer store.Close()

	var responder assistant.Responder = echo.New(cfg.ChatReplyDelay)
	if cfg.AssistantBaseURL != "" {
		rr, err := remote.New(cfg.AssistantBaseURL, cfg.AssistantToken, 0)
		if err != nil {
			log.Error("assistant config", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		responder = rr
	}

	r, err := router.NewRouter(router.Options{
		Store:     store,
		Logger:    log,
		Metrics:   metrics.New(),
		Responder: responder,
		CacheSize: cfg.CacheSize,
	})
	if err != nil {
		log.Error("router", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "store": cfg.Store.Engine})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", map[string]any{"err": err.Error()})
	}
	// flush de las colas de escritura antes de cerrar el store
	if err := r.Close(shutdownCtx); err != nil {
		log.Warn("flush state", map[string]any{"err": err.Error()})
	}
	if shutdownTracing != nil {
		_ = shutdownTracing(shutdownCtx)
	}
}
