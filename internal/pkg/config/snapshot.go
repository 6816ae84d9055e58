package config

import (
	"context"
	"os"

	"github.com/lurra-labs/elevate/internal/core/domain"
)

// BuildSnapshot resolves the configuration into an immutable snapshot,
// enumerating each dataset's tile directory. Enumeration is the expensive
// part for datasets split across many files, which is why snapshots are
// cached for the process lifetime.
func BuildSnapshot(cfg *Config) (*domain.Snapshot, error) {
	datasets := make(map[string]domain.Dataset, len(cfg.Datasets))
	for _, dc := range cfg.Datasets {
		ds := domain.Dataset{
			Name:       dc.Name,
			Path:       dc.Path,
			ComputeURL: dc.ComputeURL,
		}
		if dc.Path != "" {
			n, err := countTiles(dc.Path)
			if err != nil {
				return nil, &domain.ConfigError{
					Msg: "dataset '" + dc.Name + "': cannot read tile directory",
					Err: err,
				}
			}
			ds.TileCount = n
		}
		datasets[dc.Name] = ds
	}

	return &domain.Snapshot{
		MaxLocationsPerRequest: cfg.Query.MaxLocationsPerRequest,
		CORSOrigin:             cfg.Query.AccessControlAllowOrigin,
		Datasets:               datasets,
	}, nil
}

// Loader adapts BuildSnapshot to the Cache's load function.
func Loader(cfg *Config) func(context.Context) (*domain.Snapshot, error) {
	return func(context.Context) (*domain.Snapshot, error) {
		return BuildSnapshot(cfg)
	}
}

func countTiles(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() {
			n++
		}
	}
	return n, nil
}
