package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/lurra-labs/elevate/internal/core/domain"
	"github.com/lurra-labs/elevate/internal/core/ports"
)

// DefaultInterpolation is applied when the client omits the interpolation
// parameter. The validator always receives an explicit value.
const DefaultInterpolation = "bilinear"

// Result TTL for cached responses. Dataset rasters only change on
// reconfiguration, which also invalidates the snapshot.
const resultCacheTTL = 3600

// ElevationService orchestrates one elevation query: validate the
// interpolation method, parse the location batch, resolve the dataset,
// call the compute backend, and assemble ordered results.
type ElevationService struct {
	snapshots ports.SnapshotProvider
	backend   ports.ElevationBackend
	cache     ports.CacheService
}

// NewElevationService creates a new ElevationService. cache may be nil.
func NewElevationService(snapshots ports.SnapshotProvider, backend ports.ElevationBackend, cache ports.CacheService) *ElevationService {
	return &ElevationService{snapshots: snapshots, backend: backend, cache: cache}
}

// Methods returns the backend's interpolation method registry.
func (s *ElevationService) Methods() []string {
	return s.backend.Methods()
}

// Query runs the full pipeline for one request. datasetName comes from the
// URL path, rawLocations and method from the query string; method may be
// empty. Results preserve the input point order.
func (s *ElevationService) Query(ctx context.Context, datasetName, rawLocations, method string) ([]domain.Result, error) {
	if method == "" {
		method = DefaultInterpolation
	}
	if err := s.validateMethod(method); err != nil {
		return nil, err
	}

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	points, err := ParseLocations(rawLocations, snap.MaxLocationsPerRequest)
	if err != nil {
		return nil, err
	}

	dataset, err := snap.Dataset(datasetName)
	if err != nil {
		return nil, err
	}

	cacheKey := resultKey(datasetName, method, rawLocations)
	if cached, ok := s.cachedResults(ctx, cacheKey); ok {
		return cached, nil
	}

	lats := make([]float64, len(points))
	lngs := make([]float64, len(points))
	for i, p := range points {
		lats[i] = p.Lat
		lngs[i] = p.Lng
	}

	elevations, err := s.backend.Elevations(ctx, lats, lngs, dataset, method)
	if err != nil {
		return nil, err
	}
	if len(elevations) != len(points) {
		return nil, fmt.Errorf("backend returned %d elevations for %d points", len(elevations), len(points))
	}

	results := make([]domain.Result, len(points))
	for i, p := range points {
		results[i] = domain.Result{Elevation: elevations[i], Location: p}
	}

	s.storeResults(ctx, cacheKey, results)
	return results, nil
}

func (s *ElevationService) validateMethod(method string) error {
	supported := s.backend.Methods()
	for _, m := range supported {
		if m == method {
			return nil
		}
	}
	return &domain.UnsupportedMethodError{Method: method, Supported: supported}
}

// resultKey derives a cache key from the request triple. The raw locations
// string is hashed, it can be arbitrarily long.
func resultKey(dataset, method, rawLocations string) string {
	sum := sha256.Sum256([]byte(rawLocations))
	return fmt.Sprintf("elev:%s:%s:%x", dataset, method, sum[:16])
}

func (s *ElevationService) cachedResults(ctx context.Context, key string) ([]domain.Result, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	var results []domain.Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, false
	}
	return results, true
}

func (s *ElevationService) storeResults(ctx context.Context, key string, results []domain.Result) {
	if s.cache == nil {
		return
	}
	if data, err := json.Marshal(results); err == nil {
		_ = s.cache.Set(ctx, key, data, resultCacheTTL)
	}
}
