package ports

import "go.trai.ch/podfiler/internal/core/domain"

// LockEncoder renders pod locks into a structured document.
//
//go:generate go run go.uber.org/mock/mockgen -source=encoder.go -destination=mocks/mock_encoder.go -package=mocks
type LockEncoder interface {
	// Encode renders locks, keyed by pod name, in the order given.
	Encode(locks []domain.PodLock) ([]byte, error)
}
