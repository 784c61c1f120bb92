package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachedEmbedder memoizes backend responses in redis, keyed by a hash of the
// prepared text and the model version. The remote backend is rate-limited,
// and re-embedding passes routinely re-submit unchanged text.
type CachedEmbedder struct {
	inner  Embedder
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedEmbedder(inner Embedder, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedEmbedder {
	return &CachedEmbedder{inner: inner, rdb: rdb, ttl: ttl, logger: logger}
}

func (c *CachedEmbedder) cacheKey(text string) string {
	sum := sha256.Sum256([]byte(c.inner.ModelVersion() + "\x00" + text))
	return "embed:" + hex.EncodeToString(sum[:])
}

func (c *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	key := c.cacheKey(text)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var vec []float32
		if err := json.Unmarshal(raw, &vec); err == nil && len(vec) > 0 {
			return vec, nil
		}
		// Corrupt entry; fall through and overwrite it.
	} else if !errors.Is(err, redis.Nil) {
		// Cache unavailability never fails an embed.
		c.logger.Warn("embedding cache read failed", zap.Error(err))
	}

	vec, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if bs, err := json.Marshal(vec); err == nil {
		if err := c.rdb.Set(ctx, key, bs, c.ttl).Err(); err != nil {
			c.logger.Warn("embedding cache write failed", zap.Error(err))
		}
	}
	return vec, nil
}

func (c *CachedEmbedder) Dimension() int { return c.inner.Dimension() }

func (c *CachedEmbedder) ModelVersion() string { return c.inner.ModelVersion() }
