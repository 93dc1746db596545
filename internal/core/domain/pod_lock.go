package domain

import "github.com/Masterminds/semver/v3"

// PodLock is the lock information recorded for a single pod.
type PodLock struct {
	// Name is the checksum-table key, never a subspec-qualified name.
	Name string

	// Checksum is the 40 character hex digest recorded in SPEC CHECKSUMS.
	Checksum string

	// Version is the resolved version taken from the PODS tree.
	Version *semver.Version

	// Source is where the pod's source code is checked out from.
	Source CheckoutSource
}

// VersionString returns the pod version or an empty string when it is unset.
func (p PodLock) VersionString() string {
	if p.Version == nil {
		return ""
	}
	return p.Version.String()
}
