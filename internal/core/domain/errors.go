package domain

import "go.trai.ch/zerr"

var (
	// ErrUnexpectedSectionCount is returned when a Podfile.lock does not split into the eight expected sections.
	ErrUnexpectedSectionCount = zerr.New("unexpected section count")

	// ErrPatternNotMatched is returned when a pattern that must match at least once produced no match.
	ErrPatternNotMatched = zerr.New("pattern was not matched")

	// ErrCaptureAbsent is returned when a capture group did not participate in a match.
	ErrCaptureAbsent = zerr.New("capture group not found")

	// ErrUnknownSourceKind is returned when an external source uses a keyword other than path, git or http.
	ErrUnknownSourceKind = zerr.New("unrecognized external source")

	// ErrUnknownGitSource is returned when a git external source is not pinned by exactly one commit or tag.
	ErrUnknownGitSource = zerr.New("unrecognized Git external source")

	// ErrCrossReferenceMissing is returned when a checksum entry has no matching checkout or pods-tree entry.
	ErrCrossReferenceMissing = zerr.New("cross reference missing")

	// ErrInvalidVersion is returned when a pod version is not a semantic version.
	ErrInvalidVersion = zerr.New("invalid pod version")

	// ErrNoLockFiles is returned when parse-lock has neither flags nor configured lock files.
	ErrNoLockFiles = zerr.New("no lock files specified")

	// ErrLocksDiffer is returned by diff --exit-code when the two lock files resolve to different pods.
	ErrLocksDiffer = zerr.New("lock files differ")

	// ErrOutputEncodeFailed is returned when pod locks cannot be encoded.
	ErrOutputEncodeFailed = zerr.New("failed to encode pod locks")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a configured lock job is incomplete or conflicts with another job.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrStoreReadFailed is returned when the lock state store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read lock state")

	// ErrStoreUnmarshalFailed is returned when the lock state store cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal lock state")

	// ErrStoreMarshalFailed is returned when the lock state cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal lock state")

	// ErrStoreWriteFailed is returned when the lock state cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write lock state")
)
