package ports

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
)

// DistanceEstimator measures the travel distance between two points.
type DistanceEstimator interface {
	// EstimateDistance fails with kernel.ErrInvalidDistance when both points coincide.
	EstimateDistance(ctx context.Context, from, to kernel.Location) (kernel.Distance, error)
}
