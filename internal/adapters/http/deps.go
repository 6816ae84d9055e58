package http

import (
	"github.com/lurra-labs/elevate/internal/core/ports"
	"github.com/lurra-labs/elevate/internal/core/usecases"
)

// Dependencies holds everything the HTTP handlers need.
type Dependencies struct {
	Elevation *usecases.ElevationService
	Snapshots ports.SnapshotProvider

	// Debug lets unexpected faults propagate to the client with their
	// real message instead of the generic retry one. Never in production.
	Debug bool
}
