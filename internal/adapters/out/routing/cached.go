package routing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "distance"

// CachedDistanceEstimator keys entries by both endpoints rounded to 4 decimals
// (about 11 m), so nearby requests share a cached distance. Redis failures are
// logged and the wrapped estimator answers instead.
type CachedDistanceEstimator struct {
	next   ports.DistanceEstimator
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedDistanceEstimator(
	next ports.DistanceEstimator,
	rdb *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedDistanceEstimator {
	return &CachedDistanceEstimator{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With("component", "distance_cache"),
	}
}

func cacheKey(from, to kernel.Location) string {
	return fmt.Sprintf("%s:%.4f,%.4f:%.4f,%.4f",
		cacheKeyPrefix, from.Latitude(), from.Longitude(), to.Latitude(), to.Longitude())
}

func (c *CachedDistanceEstimator) EstimateDistance(ctx context.Context, from, to kernel.Location) (kernel.Distance, error) {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return kernel.Distance{}, err
	}

	key := cacheKey(from, to)

	km, err := c.rdb.Get(ctx, key).Float64()
	switch {
	case err == nil:
		if d, derr := kernel.NewDistance(km); derr == nil {
			return d, nil
		}
		c.logger.WarnContext(ctx, "Discarding invalid cached distance", "key", key, "km", km)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.WarnContext(ctx, "Distance cache read failed", "key", key, "error", err)
	}

	d, err := c.next.EstimateDistance(ctx, from, to)
	if err != nil {
		return kernel.Distance{}, err
	}

	if err := c.rdb.Set(ctx, key, d.Km(), c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Distance cache write failed", "key", key, "error", err)
	}

	return d, nil
}
