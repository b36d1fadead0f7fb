package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	Port           int
	HTTPAddr       string
	MetricsAddr    string
	DatabaseURL    string
	DatabaseName   string
	ConnectTimeout time.Duration
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	SeedLockTTL    time.Duration
	SeedOnStartup  bool
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		Port:           atoi("PORT", 8000),
		MetricsAddr:    env("METRICS_ADDR", ""),
		DatabaseURL:    env("DATABASE_URL", ""),
		DatabaseName:   env("DATABASE_NAME", ""),
		ConnectTimeout: time.Duration(atoi("STORE_CONNECT_TIMEOUT_SECONDS", 5)) * time.Second,
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		SeedLockTTL:    time.Duration(atoi("SEED_LOCK_TTL_SECONDS", 30)) * time.Second,
		SeedOnStartup:  envBool("SEED_ON_STARTUP", true),
	}
	c.HTTPAddr = "0.0.0.0:" + strconv.Itoa(c.Port)
	if c.DatabaseURL == "" || c.DatabaseName == "" {
		log.Warn().Msg("DATABASE_URL or DATABASE_NAME is empty; store will be unavailable")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
