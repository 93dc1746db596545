package podlock

import "go.trai.ch/podfiler/internal/core/domain"

// ParsePods exposes the PODS section parser for tests.
func ParsePods(m *Matcher, section string) ([]Pod, error) {
	return parsePods(m, section)
}

// ParseChecksums exposes the SPEC CHECKSUMS parser for tests.
func ParseChecksums(m *Matcher, section string) (map[string]string, error) {
	return parseChecksums(m, section)
}

// ResolveCheckouts exposes the checkout source resolution for tests.
func ResolveCheckouts(m *Matcher, sections Sections) (map[string]domain.CheckoutSource, error) {
	return resolveCheckouts(m, sections)
}

// CachedPatterns returns the number of runtime-compiled patterns held by m.
func (m *Matcher) CachedPatterns() int {
	return m.cache.Len()
}
