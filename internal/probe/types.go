package probe

import "context"

// Dependency identifiers and metadata
type DependencyID string

// ProbeKind selects how presence of a dependency is established.
type ProbeKind int

const (
	// KindPip resolves presence through pip package metadata.
	KindPip ProbeKind = iota
	// KindBinary looks for candidate binaries in PATH, with pip metadata as fallback.
	KindBinary
	// KindNative runs an in-process check.
	KindNative
)

type DependencyInfo struct {
	ID          DependencyID
	DisplayName string
	Kind        ProbeKind
	Package     string   // pip package name for metadata lookup
	Binaries    []string // candidate binary names in PATH
	VersionArgs [][]string
	Native      func(ctx context.Context) (version string, err error)
}

// Result of probing one dependency
type Result struct {
	Present bool   `json:"present"`
	Version string `json:"version,omitempty"`
	Source  string `json:"source,omitempty"` // which method established presence (binary/pip/native)
	Err     string `json:"error,omitempty"`
}

// Flags is the read-only view consumers use to gate dispatch.
// *Snapshot implements it.
type Flags interface {
	Has(id DependencyID) bool
}
