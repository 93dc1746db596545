package podlock

import (
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/podfiler/internal/core/domain"
	"go.trai.ch/zerr"
)

// defaultPatternCacheSize bounds the number of dynamically compiled patterns kept by a Matcher.
const defaultPatternCacheSize = 256

// Pattern is a named regular expression whose capture groups are addressed by name.
type Pattern struct {
	name string
	re   *regexp.Regexp
}

// MustPattern compiles expr into a Pattern and panics if it is invalid.
func MustPattern(name, expr string) *Pattern {
	return &Pattern{name: name, re: regexp.MustCompile(expr)}
}

// Name returns the pattern name used in error metadata.
func (p *Pattern) Name() string {
	return p.name
}

// Match is a single match of a Pattern against a text block.
type Match struct {
	text    string
	indices []int
	pattern *Pattern
}

// At returns capture group i, counting from 1.
// Groups that did not participate, matched the empty string or are out of range are absent.
func (m Match) At(i int) (string, error) {
	if i < 1 || 2*i+1 >= len(m.indices) {
		return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrCaptureAbsent, "group index out of range"),
			"pattern", m.pattern.name), "group", i)
	}
	start, end := m.indices[2*i], m.indices[2*i+1]
	if start < 0 || end <= start {
		return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrCaptureAbsent, "group did not participate"),
			"pattern", m.pattern.name), "group", i)
	}
	return m.text[start:end], nil
}

// Group returns the capture group with the given name.
func (m Match) Group(name string) (string, error) {
	i := m.pattern.re.SubexpIndex(name)
	if i < 0 {
		return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrCaptureAbsent, "unknown group"),
			"pattern", m.pattern.name), "group", name)
	}
	return m.At(i)
}

// Optional returns the named capture group, or "" and false when it is absent.
func (m Match) Optional(name string) (string, bool) {
	v, err := m.Group(name)
	if err != nil {
		return "", false
	}
	return v, true
}

// Text returns the complete matched text.
func (m Match) Text() string {
	return m.text[m.indices[0]:m.indices[1]]
}

// Matcher runs Patterns against text blocks.
// Patterns compiled at runtime are kept in a bounded cache shared by all callers.
type Matcher struct {
	cache *lru.Cache[string, *Pattern]
}

// NewMatcher creates a Matcher whose runtime pattern cache holds up to size entries.
func NewMatcher(size int) (*Matcher, error) {
	if size <= 0 {
		size = defaultPatternCacheSize
	}
	cache, err := lru.New[string, *Pattern](size)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create pattern cache")
	}
	return &Matcher{cache: cache}, nil
}

// Compile returns the pattern for expr, compiling it on first use.
func (m *Matcher) Compile(name, expr string) (*Pattern, error) {
	if p, ok := m.cache.Get(expr); ok {
		return p, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to compile pattern"), "pattern", name)
	}
	p := &Pattern{name: name, re: re}
	m.cache.Add(expr, p)
	return p, nil
}

// Match returns every non-overlapping match of p in text, in order.
func (m *Matcher) Match(text string, p *Pattern) []Match {
	all := p.re.FindAllStringSubmatchIndex(text, -1)
	matches := make([]Match, 0, len(all))
	for _, indices := range all {
		matches = append(matches, Match{text: text, indices: indices, pattern: p})
	}
	return matches
}

// FirstMatch returns the first match of p in text.
func (m *Matcher) FirstMatch(text string, p *Pattern) (Match, error) {
	indices := p.re.FindStringSubmatchIndex(text)
	if indices == nil {
		return Match{}, zerr.With(zerr.Wrap(domain.ErrPatternNotMatched, "no match"), "pattern", p.name)
	}
	return Match{text: text, indices: indices, pattern: p}, nil
}
