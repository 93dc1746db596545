package podlock_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/podfiler/internal/core/domain"
	"go.trai.ch/podfiler/internal/engine/podlock"
	"go.trai.ch/zerr"
)

func TestSplitSections(t *testing.T) {
	sections, err := podlock.SplitSections(fixtureLock)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sections.Pods, "PODS:"))
	assert.True(t, strings.HasPrefix(sections.Dependencies, "DEPENDENCIES:"))
	assert.True(t, strings.HasPrefix(sections.SpecRepos, "SPEC REPOS:"))
	assert.True(t, strings.HasPrefix(sections.ExternalSources, "EXTERNAL SOURCES:"))
	assert.True(t, strings.HasPrefix(sections.CheckoutOptions, "CHECKOUT OPTIONS:"))
	assert.True(t, strings.HasPrefix(sections.SpecChecksums, "SPEC CHECKSUMS:"))
	assert.True(t, strings.HasPrefix(sections.PodfileChecksum, "PODFILE CHECKSUM:"))
	assert.Equal(t, "COCOAPODS: 1.15.2\n", sections.CocoaPods)
}

func TestSplitSections_StripsQuotes(t *testing.T) {
	content := strings.Replace(fixtureLock, "trunk:", `"trunk":`, 1)

	sections, err := podlock.SplitSections(content)
	require.NoError(t, err)
	assert.NotContains(t, sections.SpecRepos, `"`)
	assert.Contains(t, sections.SpecRepos, "  trunk:")
}

func TestSplitSections_WrongCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		actual  int
	}{
		{name: "Empty", content: "", actual: 1},
		{name: "MissingSection", content: strings.Replace(fixtureLock, "\n\nCOCOAPODS", "\nCOCOAPODS", 1), actual: 7},
		{name: "ExtraBlankLine", content: fixtureLock + "\n\nEXTRA: yes", actual: 9},
		{name: "CRLF", content: strings.ReplaceAll(fixtureLock, "\n", "\r\n"), actual: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := podlock.SplitSections(tt.content)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrUnexpectedSectionCount))

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			meta := zErr.Metadata()
			assert.Equal(t, 8, meta["expected"])
			assert.Equal(t, tt.actual, meta["actual"])
		})
	}
}
