// Package backend relays elevation computation to the raster service that
// owns each dataset's tiles. Raster access and interpolation happen there;
// this adapter only moves coordinate arrays across the wire.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/lurra-labs/elevate/internal/core/domain"
	"github.com/lurra-labs/elevate/internal/pkg/metrics"
)

// interpolationMethods is the published registry, sorted. Validation
// against it happens in the orchestrator, before any locations are parsed.
var interpolationMethods = []string{"bilinear", "cubic", "nearest"}

// Relay implements ports.ElevationBackend over HTTP.
type Relay struct {
	client *http.Client
}

// NewRelay creates a relay backend with the given per-call timeout.
func NewRelay(timeout time.Duration) *Relay {
	return &Relay{client: &http.Client{Timeout: timeout}}
}

// Methods returns the supported interpolation method names.
func (r *Relay) Methods() []string {
	return interpolationMethods
}

type computeRequest struct {
	Dataset    string    `json:"dataset"`
	Path       string    `json:"path,omitempty"`
	Method     string    `json:"method"`
	Latitudes  []float64 `json:"latitudes"`
	Longitudes []float64 `json:"longitudes"`
}

type computeResponse struct {
	Elevations []*float64 `json:"elevations"`
	Error      string     `json:"error"`
}

// Elevations forwards the batch to the dataset's compute endpoint. A 400
// from the endpoint is the backend rejecting the input (e.g. a point
// outside dataset coverage) and surfaces as a client fault.
func (r *Relay) Elevations(ctx context.Context, lats, lngs []float64, dataset domain.Dataset, method string) ([]*float64, error) {
	if dataset.ComputeURL == "" {
		return nil, &domain.ConfigError{Msg: fmt.Sprintf("dataset '%s' has no compute_url", dataset.Name)}
	}

	ctx, span := otel.Tracer("elevate/backend").Start(ctx, "backend.elevations")
	span.SetAttributes(
		attribute.String("dataset", dataset.Name),
		attribute.String("method", method),
		attribute.Int("locations", len(lats)),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.BackendDuration.WithLabelValues(dataset.Name).Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(computeRequest{
		Dataset:    dataset.Name,
		Path:       dataset.Path,
		Method:     method,
		Latitudes:  lats,
		Longitudes: lngs,
	})
	if err != nil {
		return nil, fmt.Errorf("backend: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, dataset.ComputeURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend: %w", err)
	}
	defer resp.Body.Close()

	var decoded computeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("backend: decode response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		msg := decoded.Error
		if msg == "" {
			msg = "Backend rejected the input."
		}
		return nil, &domain.InputError{Msg: msg}
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("backend: unexpected status %d", resp.StatusCode)
	}

	if len(decoded.Elevations) != len(lats) {
		return nil, fmt.Errorf("backend: %d elevations for %d locations", len(decoded.Elevations), len(lats))
	}
	return decoded.Elevations, nil
}
