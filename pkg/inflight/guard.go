// Package inflight serialises mutations per record. A second caller for the
// same key is refused while the first one holds it.
package inflight

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-interview-report-backend/pkg/logger"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrInFlight is returned when the key is already held.
var ErrInFlight = errors.New("operation already in progress")

// releaseScript deletes the key only if it still holds our token.
// KEYS[1] = guard key, ARGV[1] = token
const releaseScript = `
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('DEL', KEYS[1])
end
return 0
`

// Guard hands out per-key leases. With a Redis client the lease is shared
// across instances; otherwise, or when Redis errors, it is process-local.
type Guard struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
	local  sync.Map
}

// NewGuard creates a guard. client may be nil. ttl bounds how long a crashed
// holder can block a key in Redis.
func NewGuard(client *goredis.Client, prefix string, ttl time.Duration) *Guard {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Guard{client: client, prefix: prefix, ttl: ttl}
}

// Acquire takes the lease for key. The returned release func must be called
// exactly once when the guarded operation resolves.
func (g *Guard) Acquire(ctx context.Context, key string) (func(), error) {
	fullKey := g.prefix + key

	if g.client != nil {
		release, err := g.acquireRedis(ctx, fullKey)
		if err == nil || errors.Is(err, ErrInFlight) {
			return release, err
		}
		logger.Log.Warn("inflight guard falling back to local lease",
			zap.String("key", fullKey),
			zap.Error(err),
		)
	}

	return g.acquireLocal(fullKey)
}

func (g *Guard) acquireRedis(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInFlight
	}

	return func() {
		// The request context may already be cancelled.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := g.client.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
			logger.Log.Warn("inflight guard release failed", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

func (g *Guard) acquireLocal(key string) (func(), error) {
	if _, loaded := g.local.LoadOrStore(key, struct{}{}); loaded {
		return nil, ErrInFlight
	}
	var once sync.Once
	return func() {
		once.Do(func() { g.local.Delete(key) })
	}, nil
}
