package podlock

import (
	"strings"

	"go.trai.ch/podfiler/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	sectionDelimiter = "\n\n"
	sectionCount     = 8
)

// Section names in the order they appear in a Podfile.lock.
const (
	SectionPods            = "PODS"
	SectionDependencies    = "DEPENDENCIES"
	SectionSpecRepos       = "SPEC REPOS"
	SectionExternalSources = "EXTERNAL SOURCES"
	SectionCheckoutOptions = "CHECKOUT OPTIONS"
	SectionSpecChecksums   = "SPEC CHECKSUMS"
	SectionPodfileChecksum = "PODFILE CHECKSUM"
	SectionCocoaPods       = "COCOAPODS"
)

// Sections holds the raw text of every top-level Podfile.lock section.
type Sections struct {
	Pods            string
	Dependencies    string
	SpecRepos       string
	ExternalSources string
	CheckoutOptions string
	SpecChecksums   string
	PodfileChecksum string
	CocoaPods       string
}

// SplitSections strips quotes from content and splits it into its eight sections.
func SplitSections(content string) (Sections, error) {
	parts := strings.Split(strings.ReplaceAll(content, `"`, ""), sectionDelimiter)
	if len(parts) != sectionCount {
		err := zerr.With(zerr.Wrap(domain.ErrUnexpectedSectionCount, "Podfile.lock does not look as expected"),
			"expected", sectionCount)
		return Sections{}, zerr.With(err, "actual", len(parts))
	}

	return Sections{
		Pods:            parts[0],
		Dependencies:    parts[1],
		SpecRepos:       parts[2],
		ExternalSources: parts[3],
		CheckoutOptions: parts[4],
		SpecChecksums:   parts[5],
		PodfileChecksum: parts[6],
		CocoaPods:       parts[7],
	}, nil
}
