package domain

// SourceKind names the provenance of a pod's source code.
type SourceKind string

const (
	// SourceKindPath is a pod vendored from a local path.
	SourceKindPath SourceKind = "path"
	// SourceKindGitTag is a pod checked out from a git tag.
	SourceKindGitTag SourceKind = "git+tag"
	// SourceKindGitCommit is a pod checked out from a git commit.
	SourceKindGitCommit SourceKind = "git+commit"
	// SourceKindSpecRepo is a pod published to a spec repository.
	SourceKindSpecRepo SourceKind = "spec"
	// SourceKindHTTP is a pod downloaded from an HTTP archive.
	SourceKindHTTP SourceKind = "http"
	// SourceKindPodspec is a pod resolved from a standalone podspec.
	SourceKindPodspec SourceKind = "podspec"
)

// CheckoutSource describes where a pod's source is obtained from.
//
// The set of implementations is closed: only the types in this file satisfy it.
// Every implementation is a comparable value type, so two sources are equal
// exactly when == reports it.
type CheckoutSource interface {
	// Kind reports the provenance kind of the source.
	Kind() SourceKind
	isCheckoutSource()
}

// PathSource is a pod referenced by a local path.
type PathSource struct {
	Path string
}

// GitTagSource is a git repository pinned to a tag.
type GitTagSource struct {
	Tag string
	URL string
}

// GitCommitSource is a git repository pinned to a commit.
type GitCommitSource struct {
	Commit string
	URL    string
}

// SpecRepoSource is a pod published in a spec repository such as trunk.
type SpecRepoSource struct {
	Repo string
}

// HTTPSource is a pod downloaded from an HTTP URL.
type HTTPSource struct {
	URL string
}

// PodspecSource is a pod resolved from a podspec reference.
type PodspecSource struct {
	Ref string
}

// Kind implements CheckoutSource.
func (PathSource) Kind() SourceKind { return SourceKindPath }

// Kind implements CheckoutSource.
func (GitTagSource) Kind() SourceKind { return SourceKindGitTag }

// Kind implements CheckoutSource.
func (GitCommitSource) Kind() SourceKind { return SourceKindGitCommit }

// Kind implements CheckoutSource.
func (SpecRepoSource) Kind() SourceKind { return SourceKindSpecRepo }

// Kind implements CheckoutSource.
func (HTTPSource) Kind() SourceKind { return SourceKindHTTP }

// Kind implements CheckoutSource.
func (PodspecSource) Kind() SourceKind { return SourceKindPodspec }

func (PathSource) isCheckoutSource()      {}
func (GitTagSource) isCheckoutSource()    {}
func (GitCommitSource) isCheckoutSource() {}
func (SpecRepoSource) isCheckoutSource()  {}
func (HTTPSource) isCheckoutSource()      {}
func (PodspecSource) isCheckoutSource()   {}
