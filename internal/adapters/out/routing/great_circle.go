// Package routing estimates road distances between pickup and drop-off points.
//
// GreatCircleEstimator is the baseline: the haversine distance on a sphere of
// radius 6371 km. CachedDistanceEstimator wraps any ports.DistanceEstimator and
// memoises results in Redis.
package routing

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
)

type GreatCircleEstimator struct{}

func NewGreatCircleEstimator() *GreatCircleEstimator {
	return &GreatCircleEstimator{}
}

// EstimateDistance fails with kernel.ErrInvalidDistance for identical points.
func (e *GreatCircleEstimator) EstimateDistance(_ context.Context, from, to kernel.Location) (kernel.Distance, error) {
	km, err := from.GreatCircleKm(to)
	if err != nil {
		return kernel.Distance{}, err
	}
	return kernel.NewDistance(km)
}
