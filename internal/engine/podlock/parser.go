// Package podlock parses CocoaPods Podfile.lock files into sorted pod lock records.
//
// A Podfile.lock is split into its eight top-level sections. The PODS tree,
// SPEC CHECKSUMS and the checkout sources (SPEC REPOS, EXTERNAL SOURCES and
// CHECKOUT OPTIONS) are parsed into separate tables which are then joined by
// pod name. Subspec entries such as "Name/Sub" are matched back to their
// parent by prefix when the checksum table only lists the parent.
package podlock

import (
	"slices"
	"strings"

	"go.trai.ch/podfiler/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parser holds the cross-referenced tables of a single Podfile.lock.
type Parser struct {
	pods      []Pod
	checkouts map[string]domain.CheckoutSource
	checksums map[string]string
}

// NewParser parses content and builds the tables PodLocks joins.
func NewParser(m *Matcher, content string) (*Parser, error) {
	sections, err := SplitSections(content)
	if err != nil {
		return nil, err
	}

	pods, err := parsePods(m, sections.Pods)
	if err != nil {
		return nil, err
	}
	checksums, err := parseChecksums(m, sections.SpecChecksums)
	if err != nil {
		return nil, err
	}
	checkouts, err := resolveCheckouts(m, sections)
	if err != nil {
		return nil, err
	}

	return &Parser{
		pods:      pods,
		checkouts: checkouts,
		checksums: checksums,
	}, nil
}

// Pods returns the PODS entries in file order.
func (p *Parser) Pods() []Pod {
	return slices.Clone(p.pods)
}

// PodLocks joins the checksum table with the checkout sources and the pods tree.
// The result holds one record per checksum entry, sorted by name.
func (p *Parser) PodLocks() ([]domain.PodLock, error) {
	locks := make([]domain.PodLock, 0, len(p.checksums))
	for name, checksum := range p.checksums {
		source, ok := p.checkouts[name]
		if !ok {
			err := zerr.Wrap(domain.ErrCrossReferenceMissing, "no matching checkout entry")
			return nil, zerr.With(err, "pod", name)
		}
		pod, ok := p.findPod(name)
		if !ok {
			err := zerr.Wrap(domain.ErrCrossReferenceMissing, "no matching pods-tree entry")
			return nil, zerr.With(err, "pod", name)
		}

		locks = append(locks, domain.PodLock{
			Name:     name,
			Checksum: checksum,
			Version:  pod.Version,
			Source:   source,
		})
	}

	slices.SortFunc(locks, func(a, b domain.PodLock) int {
		return strings.Compare(a.Name, b.Name)
	})
	return locks, nil
}

// findPod returns the first pod named name or one of its subspecs, in parse order.
// Sibling subspecs with diverging versions resolve to whichever is listed first.
func (p *Parser) findPod(name string) (Pod, bool) {
	prefix := name + "/"
	for _, pod := range p.pods {
		if pod.Name == name || strings.HasPrefix(pod.Name, prefix) {
			return pod, true
		}
	}
	return Pod{}, false
}

// Parse parses a Podfile.lock and returns its pod locks sorted by name.
func Parse(m *Matcher, content string) ([]domain.PodLock, error) {
	p, err := NewParser(m, content)
	if err != nil {
		return nil, err
	}
	return p.PodLocks()
}
