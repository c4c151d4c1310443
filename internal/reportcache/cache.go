// internal/reportcache/cache.go
package reportcache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/database"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/logger"
)

// Cache keeps rendered report bytes in Redis, keyed by submission id.
// Reports are deterministic per submission, so cached bytes never go stale;
// the TTL only bounds memory. A cache failure is never an error for the
// caller, only a re-render.
type Cache struct {
	redis *database.RedisClient
	ttl   time.Duration
	log   logger.Logger
}

func New(rc *database.RedisClient, ttl time.Duration, log logger.Logger) *Cache {
	return &Cache{
		redis: rc,
		ttl:   ttl,
		log:   log.WithFields(map[string]interface{}{"component": "report-cache"}),
	}
}

func key(submissionID string) string {
	return "scoping:report:" + submissionID
}

// Get returns the cached report bytes, or nil on a miss.
func (c *Cache) Get(ctx context.Context, submissionID string) []byte {
	if c == nil || c.redis == nil {
		return nil
	}
	val, err := c.redis.Client.Get(ctx, key(submissionID)).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		c.log.WithError(err).Warn("report cache read failed", map[string]interface{}{
			"submissionId": submissionID,
		})
		return nil
	}
	return val
}

// Put stores report bytes with the configured TTL.
func (c *Cache) Put(ctx context.Context, submissionID string, report []byte) {
	if c == nil || c.redis == nil {
		return
	}
	if err := c.redis.Set(ctx, key(submissionID), report, c.ttl); err != nil {
		c.log.WithError(err).Warn("report cache write failed", map[string]interface{}{
			"submissionId": submissionID,
		})
	}
}
