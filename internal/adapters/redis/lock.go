package redisad

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"iil_api/internal/adapters/observability"
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock taken over by another replica is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

type Lock struct{ c *redis.Client }

func New(addr, pass string, db int) *Lock {
	return &Lock{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func NewWithClient(c *redis.Client) *Lock { return &Lock{c: c} }

func (l *Lock) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	token, err := newToken()
	if err != nil {
		return nil, false, err
	}
	ok, err := l.c.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		observability.ObserveSeedLock("error")
		return nil, false, err
	}
	if !ok {
		observability.ObserveSeedLock("busy")
		return nil, false, nil
	}
	observability.ObserveSeedLock("acquired")
	release := func() {
		if err := releaseScript.Run(context.Background(), l.c, []string{key}, token).Err(); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("seed lock release failed")
			return
		}
		observability.ObserveSeedLock("released")
	}
	return release, true, nil
}

func (l *Lock) Close() error { return l.c.Close() }

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
