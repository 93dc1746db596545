package podlock

import (
	"go.trai.ch/podfiler/internal/core/domain"
	"go.trai.ch/podfiler/internal/core/ports"
)

var _ ports.LockParser = (*Engine)(nil)

// Engine implements ports.LockParser.
// It is safe for concurrent use; every Parse call builds its own Parser.
type Engine struct {
	matcher *Matcher
}

// NewEngine creates an Engine that shares matcher across parses.
func NewEngine(matcher *Matcher) *Engine {
	return &Engine{matcher: matcher}
}

// Parse parses the content of a Podfile.lock.
func (e *Engine) Parse(content string) ([]domain.PodLock, error) {
	return Parse(e.matcher, content)
}
