package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"

	"github.com/caresched/hospital-booking/internal/api"
	"github.com/caresched/hospital-booking/internal/booking"
	"github.com/caresched/hospital-booking/internal/config"
	"github.com/caresched/hospital-booking/internal/hospital"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("config load error")
	}

	logger := newLogger(cfg)
	logger.Info().
		Str("env", cfg.Env).
		Str("http_port", cfg.HTTPPort).
		Int("catalog_size", cfg.CatalogSize).
		Msg("api-server starting up")

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// All state lives in memory and is regenerated on every start.
	faker := gofakeit.New(cfg.RandomSeed)
	gen := hospital.NewSlotGenerator(nil, faker)
	dir := hospital.NewDirectory(hospital.SeedCatalog(faker, gen, cfg.CatalogSize))
	ledger := booking.NewLedger(dir, nil)

	logger.Info().Int("hospitals", dir.Len()).Msg("catalog seeded")

	router := api.NewRouter(api.RouterConfig{
		Directory: dir,
		Ledger:    ledger,
		SlotGen:   gen,
		Logger:    logger,
		Env:       cfg.Env,
		Version:   version,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-rootCtx.Done():
		logger.Info().Msg("shutting down api-server")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.Env == "dev" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(level).
			With().Timestamp().Str("service", "hospital-booking").
			Logger()
	}
	return zerolog.New(os.Stdout).
		Level(level).
		With().Timestamp().Str("service", "hospital-booking").
		Logger()
}
