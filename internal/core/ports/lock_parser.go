// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/podfiler/internal/core/domain"

// LockParser turns the content of a Podfile.lock into pod lock records.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_parser.go -destination=mocks/mock_lock_parser.go -package=mocks
type LockParser interface {
	// Parse returns one record per SPEC CHECKSUMS entry, sorted by pod name.
	Parse(content string) ([]domain.PodLock, error)
}
