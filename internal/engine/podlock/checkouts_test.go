package podlock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/podfiler/internal/core/domain"
	"go.trai.ch/podfiler/internal/engine/podlock"
)

func resolve(t *testing.T, specRepos, externalSources, checkoutOptions string) (map[string]domain.CheckoutSource, error) {
	t.Helper()
	sections, err := podlock.SplitSections(lockFile("", specRepos, externalSources, checkoutOptions, ""))
	require.NoError(t, err)
	return podlock.ResolveCheckouts(newMatcher(t), sections)
}

func TestResolveCheckouts_Fixture(t *testing.T) {
	sections, err := podlock.SplitSections(fixtureLock)
	require.NoError(t, err)

	checkouts, err := podlock.ResolveCheckouts(newMatcher(t), sections)
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.CheckoutSource{
		"AFNetworking": domain.SpecRepoSource{Repo: "trunk"},
		"PodTest": domain.GitCommitSource{
			Commit: "da4e9da48d5a2bf65bad68f5dec35d6ddf8825a1",
			URL:    "PodTest-git-source",
		},
		"Reachability": domain.PathSource{Path: "Reachability"},
	}, checkouts)
}

func TestResolveCheckouts(t *testing.T) {
	tests := []struct {
		name            string
		specRepos       string
		externalSources string
		checkoutOptions string
		expected        map[string]domain.CheckoutSource
	}{
		{
			name:     "Empty",
			expected: map[string]domain.CheckoutSource{},
		},
		{
			name: "MultipleSpecRepos",
			specRepos: "  trunk:\n    - Alamofire\n    - SnapKit\n" +
				"  https://github.com/acme/Specs.git:\n    - AcmeKit",
			expected: map[string]domain.CheckoutSource{
				"Alamofire": domain.SpecRepoSource{Repo: "trunk"},
				"SnapKit":   domain.SpecRepoSource{Repo: "trunk"},
				"AcmeKit":   domain.SpecRepoSource{Repo: "https://github.com/acme/Specs.git"},
			},
		},
		{
			name:            "HTTP",
			externalSources: "  Zipped:\n    :http: https://example.com/zipped-1.0.zip",
			expected: map[string]domain.CheckoutSource{
				"Zipped": domain.HTTPSource{URL: "https://example.com/zipped-1.0.zip"},
			},
		},
		{
			name:            "GitTag",
			externalSources: "  Tagged:\n    :git: https://github.com/acme/tagged.git\n    :tag: v2.0.1",
			checkoutOptions: "  Tagged:\n    :git: https://github.com/acme/tagged.git\n    :tag: v2.0.1",
			expected: map[string]domain.CheckoutSource{
				"Tagged": domain.GitTagSource{Tag: "v2.0.1", URL: "https://github.com/acme/tagged.git"},
			},
		},
		{
			name:            "GitBranchPinnedByCommit",
			externalSources: "  Branched:\n    :branch: main\n    :git: git@github.com:acme/branched.git",
			checkoutOptions: "  Branched:\n    :commit: 0123456789abcdef0123456789abcdef01234567\n" +
				"    :git: git@github.com:acme/branched.git",
			expected: map[string]domain.CheckoutSource{
				"Branched": domain.GitCommitSource{
					Commit: "0123456789abcdef0123456789abcdef01234567",
					URL:    "git@github.com:acme/branched.git",
				},
			},
		},
		{
			name:            "CheckoutOptionsMatchedByExactName",
			externalSources: "  Kit:\n    :git: https://github.com/acme/kit.git",
			checkoutOptions: "  KitExtras:\n    :git: https://github.com/acme/extras.git\n    :tag: 9.9.9\n" +
				"  Kit:\n    :git: https://github.com/acme/kit.git\n    :tag: 1.2.3",
			expected: map[string]domain.CheckoutSource{
				"Kit": domain.GitTagSource{Tag: "1.2.3", URL: "https://github.com/acme/kit.git"},
			},
		},
		{
			name:            "ExternalSourceWinsOverSpecRepo",
			specRepos:       "  trunk:\n    - Local",
			externalSources: "  Local:\n    :path: ../Local",
			expected: map[string]domain.CheckoutSource{
				"Local": domain.PathSource{Path: "../Local"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkouts, err := resolve(t, tt.specRepos, tt.externalSources, tt.checkoutOptions)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, checkouts)
		})
	}
}

func TestResolveCheckouts_Errors(t *testing.T) {
	tests := []struct {
		name            string
		externalSources string
		checkoutOptions string
		expected        error
	}{
		{
			name:            "UnknownKind",
			externalSources: "  Spec:\n    :podspec: https://example.com/Spec.podspec",
			expected:        domain.ErrUnknownSourceKind,
		},
		{
			name:            "MissingCheckoutOptions",
			externalSources: "  Kit:\n    :git: https://github.com/acme/kit.git",
			expected:        domain.ErrPatternNotMatched,
		},
		{
			name:            "NoPin",
			externalSources: "  Kit:\n    :git: https://github.com/acme/kit.git",
			checkoutOptions: "  Kit:\n    :git: https://github.com/acme/kit.git",
			expected:        domain.ErrUnknownGitSource,
		},
		{
			name:            "CommitAndTag",
			externalSources: "  Kit:\n    :git: https://github.com/acme/kit.git",
			checkoutOptions: "  Kit:\n    :git: https://github.com/acme/kit.git\n" +
				"    :commit: 0123456789abcdef0123456789abcdef01234567\n    :tag: 1.0.0",
			expected: domain.ErrUnknownGitSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolve(t, "", tt.externalSources, tt.checkoutOptions)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}
