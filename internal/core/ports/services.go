package ports

import (
	"context"

	"github.com/lurra-labs/elevate/internal/core/domain"
)

// ElevationBackend computes elevations for parallel coordinate arrays.
// Implementations must return one elevation per input point, in input
// order, and raise *domain.InputError when they reject otherwise
// range-valid coordinates.
type ElevationBackend interface {
	// Elevations returns the elevation at each (lats[i], lngs[i]),
	// nil where the dataset holds no data.
	Elevations(ctx context.Context, lats, lngs []float64, dataset domain.Dataset, method string) ([]*float64, error)

	// Methods returns the names of the supported interpolation methods,
	// sorted.
	Methods() []string
}

// SnapshotProvider hands out the current immutable configuration snapshot.
// Snapshot is safe for concurrent use; Invalidate may be called from a
// different goroutine than any reader. Readers already holding a snapshot
// keep a consistent view, since snapshots are never mutated in place.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
	Invalidate()
}

// CacheService provides read-through caching for query results.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
}
