package podlock_test

import (
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/require"
	"go.trai.ch/podfiler/internal/engine/podlock"
)

const fixtureLock = `PODS:
  - AFNetworking (1.3.4)
  - PodTest (1.0.0):
    - PodTest/subspec_1 (= 1.0.0)
    - PodTest/subspec_2 (= 1.0.0)
  - PodTest/subspec_1 (1.0.0)
  - PodTest/subspec_2 (1.0.0)
  - Reachability (3.1.0-FOO-SNAPSHOT)

DEPENDENCIES:
  - AFNetworking
  - PodTest (from ` + "`PodTest-git-source`" + `)
  - Reachability (from ` + "`Reachability`" + `)

SPEC REPOS:
  trunk:
    - AFNetworking

EXTERNAL SOURCES:
  PodTest:
    :git: PodTest-git-source
  Reachability:
    :path: Reachability

CHECKOUT OPTIONS:
  PodTest:
    :git: PodTest-git-source
    :commit: da4e9da48d5a2bf65bad68f5dec35d6ddf8825a1

SPEC CHECKSUMS:
  AFNetworking: cf8e418e16f0c9c7e5c3150d019a3c679d015018
  PodTest: 671615d047bc2a9e8c271feb99b749411b66aed2
  Reachability: b14c20321fa00f7f4600d8c9856fc57e71ef2ffe

PODFILE CHECKSUM: f371e6714eb9c3c0225b554152a3238a1d5d5391

COCOAPODS: 1.15.2
`

// lockFile assembles a Podfile.lock from the bodies of its eight sections.
// Empty bodies leave only the section header.
func lockFile(pods, specRepos, externalSources, checkoutOptions, checksums string) string {
	section := func(header, body string) string {
		if body == "" {
			return header + ":"
		}
		return header + ":\n" + strings.TrimRight(body, "\n")
	}
	return strings.Join([]string{
		section("PODS", pods),
		section("DEPENDENCIES", ""),
		section("SPEC REPOS", specRepos),
		section("EXTERNAL SOURCES", externalSources),
		section("CHECKOUT OPTIONS", checkoutOptions),
		section("SPEC CHECKSUMS", checksums),
		"PODFILE CHECKSUM: f371e6714eb9c3c0225b554152a3238a1d5d5391",
		"COCOAPODS: 1.15.2\n",
	}, "\n\n")
}

func newMatcher(t *testing.T) *podlock.Matcher {
	t.Helper()
	m, err := podlock.NewMatcher(0)
	require.NoError(t, err)
	return m
}

func mustVersion(t *testing.T, v string) *semver.Version {
	t.Helper()
	version, err := semver.NewVersion(v)
	require.NoError(t, err)
	return version
}
