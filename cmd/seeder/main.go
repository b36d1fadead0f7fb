package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"iil_api/internal/adapters/observability"
	redisad "iil_api/internal/adapters/redis"
	"iil_api/internal/app"
	"iil_api/internal/domain"
	"iil_api/internal/shared"
	"iil_api/internal/storage/mongodb"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("database", cfg.DatabaseName).
		Bool("lock", cfg.RedisAddr != "").
		Msg("seeder starting")

	store, err := mongodb.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName, cfg.ConnectTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	defer func() { _ = store.Close(context.Background()) }()

	// 2) unique slugs first so a concurrent seeder cannot duplicate courses
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("ensure indexes failed")
	}

	var lock domain.Locker
	if cfg.RedisAddr != "" {
		l := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer func() { _ = l.Close() }()
		lock = l
	}

	// 3) seed
	rep, err := app.NewSeedService(store, lock, cfg.SeedLockTTL).SeedIfEmpty(ctx)
	if err != nil {
		log.Error().Err(err).Msg("seed failed")
		os.Exit(1)
	}
	for coll, n := range rep.Inserted {
		log.Info().Str("collection", coll).Int("inserted", n).Msg("seed result")
	}
	log.Info().Bool("skipped", rep.Skipped).Msg("seeding completed")
}
