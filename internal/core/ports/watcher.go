package ports

import (
	"context"
	"iter"
)

// Watcher defines the interface for watching lock files for changes.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given files.
	// Changes stop once ctx is canceled or Stop is called.
	Start(ctx context.Context, paths []string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Changes returns an iterator of debounced batches of changed paths.
	// Paths are reported as they were passed to Start, cleaned and sorted.
	Changes() iter.Seq[[]string]
}
