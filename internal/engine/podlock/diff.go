package podlock

import (
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/podfiler/internal/core/domain"
)

// Diff compares the pod locks of two Podfile.lock files.
// Versions are compared with semantic version ordering; a pod whose source changed
// is reported in SourceChanged regardless of its version.
func Diff(old, updated []domain.PodLock) *domain.LockDiff {
	diff := &domain.LockDiff{}

	before := make(map[string]domain.PodLock, len(old))
	for _, lock := range old {
		before[lock.Name] = lock
	}
	after := make(map[string]domain.PodLock, len(updated))
	for _, lock := range updated {
		after[lock.Name] = lock
	}

	for name, lock := range after {
		prev, existed := before[name]
		if !existed {
			diff.Added = append(diff.Added, domain.PodChange{Name: name, Version: lock.VersionString()})
			continue
		}

		switch compareVersions(lock.Version, prev.Version) {
		case 1:
			diff.Upgraded = append(diff.Upgraded, upgrade(prev, lock))
		case -1:
			diff.Downgraded = append(diff.Downgraded, upgrade(prev, lock))
		}

		if prev.Source != lock.Source {
			diff.SourceChanged = append(diff.SourceChanged, domain.SourceChange{
				Name:      name,
				OldSource: prev.Source,
				NewSource: lock.Source,
			})
		}
	}

	for name, lock := range before {
		if _, ok := after[name]; !ok {
			diff.Removed = append(diff.Removed, domain.PodChange{Name: name, Version: lock.VersionString()})
		}
	}

	byName := func(a, b domain.PodChange) int { return strings.Compare(a.Name, b.Name) }
	slices.SortFunc(diff.Added, byName)
	slices.SortFunc(diff.Removed, byName)
	byUpgrade := func(a, b domain.PodUpgrade) int { return strings.Compare(a.Name, b.Name) }
	slices.SortFunc(diff.Upgraded, byUpgrade)
	slices.SortFunc(diff.Downgraded, byUpgrade)
	slices.SortFunc(diff.SourceChanged, func(a, b domain.SourceChange) int {
		return strings.Compare(a.Name, b.Name)
	})

	return diff
}

func upgrade(prev, lock domain.PodLock) domain.PodUpgrade {
	return domain.PodUpgrade{
		Name:       lock.Name,
		OldVersion: prev.VersionString(),
		NewVersion: lock.VersionString(),
	}
}

// compareVersions orders nil versions before any parsed version.
func compareVersions(a, b *semver.Version) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(b)
	}
}
