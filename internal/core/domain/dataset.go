package domain

// Dataset is a named collection of elevation raster data. The API layer
// treats it as an opaque handle; only the compute backend interprets the
// metadata.
type Dataset struct {
	Name string `json:"name"`
	// Path is the directory holding the dataset's raster tiles.
	Path string `json:"path,omitempty"`
	// ComputeURL is the endpoint of the computation service that owns
	// this dataset's rasters.
	ComputeURL string `json:"compute_url,omitempty"`
	// TileCount is the number of raster files found under Path.
	TileCount int `json:"tile_count"`
}

// Snapshot is an immutable view of the service configuration. A snapshot is
// built once, shared between concurrent requests, and replaced wholesale on
// invalidation. It is never mutated in place.
type Snapshot struct {
	MaxLocationsPerRequest int
	CORSOrigin             string
	Datasets               map[string]Dataset
}

// Dataset looks up a dataset by name.
func (s *Snapshot) Dataset(name string) (Dataset, error) {
	ds, ok := s.Datasets[name]
	if !ok {
		return Dataset{}, &DatasetNotFoundError{Name: name}
	}
	return ds, nil
}
