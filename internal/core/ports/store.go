package ports

import "go.trai.ch/podfiler/internal/core/domain"

// LockInfoStore defines the interface for storing and retrieving lock generation state.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LockInfoStore interface {
	// Get retrieves the lock info recorded for a lock file path.
	// Returns nil, nil if not found.
	Get(lockPath string) (*domain.LockInfo, error)

	// Put stores the lock info.
	Put(info domain.LockInfo) error
}
