package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-board/internal/adapters/auth/clerk"
	"pet-board/internal/adapters/auth/jwtkey"
	"pet-board/internal/adapters/storage/postgres"
	"pet-board/internal/platform/config"
	"pet-board/internal/platform/logger"
	"pet-board/internal/platform/metrics"
	"pet-board/internal/ports/auth"
	"pet-board/internal/router"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	opts := router.Options{
		Logger:             log,
		Metrics:            metrics.New(),
		CORSAllowedOrigins: cfg.Origins(),
	}

	// Store: Postgres si hay DSN, si no in-memory (dev). El pool se abre una
	// sola vez acá y viaja inyectado; sin estado de conexión global.
	if cfg.DBDSN != "" {
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
		log.Info("using postgres store", nil)
	} else {
		log.Info("using in-memory store", nil)
	}

	opts.SessionVerifier = buildVerifier(cfg, log)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("shutting down", nil)
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", map[string]any{"err": err.Error()})
	}
}

// buildVerifier elige el verifier de sesión según config:
// remoto > firma local > nil (modo dev con X-Debug-User-ID).
func buildVerifier(cfg config.Config, log logger.Logger) auth.SessionVerifier {
	if cfg.AuthBaseURL != "" && cfg.AuthAPIKey != "" {
		client, err := clerk.NewClient(clerk.Config{
			BaseURL: cfg.AuthBaseURL,
			APIKey:  cfg.AuthAPIKey,
		})
		if err != nil {
			log.Error("auth client config invalid", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		log.Info("using remote session verifier", nil)
		return clerk.NewVerifier(client)
	}

	if cfg.AuthSigningKey != "" {
		log.Info("using local jwt session verifier", nil)
		return jwtkey.NewVerifier(cfg.AuthSigningKey)
	}

	log.Warn("no session verifier configured, dev mode", nil)
	return nil
}
