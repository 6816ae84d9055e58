// Command configcheck loads the service configuration, builds the dataset
// snapshot, and prints what the API would serve. Run it after editing
// config.yaml to catch mistakes before a deploy.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/lurra-labs/elevate/internal/pkg/config"
)

func main() {
	cfg, err := config.Load("elevate-configcheck")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config invalid: %v\n", err)
		os.Exit(1)
	}

	snap, err := config.BuildSnapshot(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapshot failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("max locations per request: %d\n", snap.MaxLocationsPerRequest)
	if snap.CORSOrigin != "" {
		fmt.Printf("access-control-allow-origin: %s\n", snap.CORSOrigin)
	}

	names := make([]string, 0, len(snap.Datasets))
	for name := range snap.Datasets {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("datasets: %d\n", len(names))
	for _, name := range names {
		ds := snap.Datasets[name]
		fmt.Printf("  %s", ds.Name)
		if ds.Path != "" {
			fmt.Printf("  path=%s tiles=%d", ds.Path, ds.TileCount)
		}
		if ds.ComputeURL != "" {
			fmt.Printf("  compute=%s", ds.ComputeURL)
		}
		fmt.Println()
	}
}
