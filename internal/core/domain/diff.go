package domain

// PodChange is a pod added to or removed from a lock file.
type PodChange struct {
	Name    string
	Version string
}

// PodUpgrade is a pod whose version changed between two lock files.
type PodUpgrade struct {
	Name       string
	OldVersion string
	NewVersion string
}

// SourceChange is a pod whose checkout source changed between two lock files.
type SourceChange struct {
	Name      string
	OldSource CheckoutSource
	NewSource CheckoutSource
}

// LockDiff describes the differences between two Podfile.lock files.
// Every list is sorted by pod name.
type LockDiff struct {
	Added         []PodChange
	Removed       []PodChange
	Upgraded      []PodUpgrade
	Downgraded    []PodUpgrade
	SourceChanged []SourceChange
}

// IsEmpty reports whether the two lock files resolve to the same pods.
func (d *LockDiff) IsEmpty() bool {
	return d.TotalChanges() == 0
}

// TotalChanges returns the number of changed pods across all categories.
// A pod whose version and source both changed is counted twice.
func (d *LockDiff) TotalChanges() int {
	return len(d.Added) + len(d.Removed) + len(d.Upgraded) + len(d.Downgraded) + len(d.SourceChanged)
}
