package ports

import (
	"context"

	"go.trai.ch/podfiler/internal/core/domain"
)

// Telemetry records progress of lock jobs.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a new vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Log records a message associated with this vertex.
	Log(level domain.LogLevel, msg string)

	// Cached marks the vertex as satisfied without doing the work.
	Cached()

	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
}
