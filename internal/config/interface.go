package config

import "context"

// Loader is the interface for a format-specific batch input loader.
type Loader interface {
	// Load reads every input file reachable from paths and merges them into
	// a single model, preserving the order in which measurements appear.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
