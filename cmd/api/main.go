package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	server "iil_api/internal/adapters/http_server"
	"iil_api/internal/adapters/observability"
	redisad "iil_api/internal/adapters/redis"
	"iil_api/internal/app"
	"iil_api/internal/domain"
	"iil_api/internal/shared"
	"iil_api/internal/storage/mongodb"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// db: a failed connect leaves the store unavailable instead of exiting
	store, err := mongodb.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName, cfg.ConnectTimeout)
	if err != nil {
		log.Warn().Err(err).Msg("database not available")
	} else {
		log.Info().Str("database", store.Name()).Msg("database connection ok")
		if err := store.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("ensure indexes failed")
		}
	}

	if cfg.SeedOnStartup {
		seed(ctx, cfg, store)
	}

	// deps
	q := app.NewQueryService(store)
	e := app.NewEnquiryService(store)
	st := app.NewStatusService(store, cfg.DatabaseURL != "")

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, E: e, Status: st})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("database disconnect failed")
	}
}

// seed runs seed-if-empty once; failures are logged and the API still starts.
func seed(ctx context.Context, cfg shared.Config, store domain.DocumentStore) {
	var lock domain.Locker
	if cfg.RedisAddr != "" {
		l := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer func() { _ = l.Close() }()
		lock = l
	}
	rep, err := app.NewSeedService(store, lock, cfg.SeedLockTTL).SeedIfEmpty(ctx)
	switch {
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.Warn().Msg("seed skipped: database not available")
	case err != nil:
		log.Error().Err(err).Msg("seed failed")
	default:
		log.Info().
			Int("courses", rep.Inserted[domain.Collection(domain.KindCourse)]).
			Int("testimonials", rep.Inserted[domain.Collection(domain.KindTestimonial)]).
			Bool("skipped", rep.Skipped).
			Msg("seed complete")
	}
}
