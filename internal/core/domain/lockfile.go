// Package domain contains the core lockfile model and the pure transforms applied to it.
package domain

// Document is a parsed lockfile.
// After Normalize, Importers is always present. Root is the zero snapshot
// unless the input already had importers next to root-level project fields;
// those fields are kept as parsed and are not encoded.
type Document struct {
	// LockfileVersion is the declared format version token (e.g. "6.0").
	// It is kept as the raw token because the compact form is significant.
	LockfileVersion Optional[string]

	// Importers maps a project path, relative to the lockfile, to its snapshot.
	// It is absent in documents written with the legacy flat schema.
	Importers Optional[map[string]ProjectSnapshot]

	// Root holds the legacy flat fields found directly on the document root.
	Root ProjectSnapshot

	// Metadata holds every other top-level key (packages, settings, overrides...).
	Metadata map[string]any
}

// ProjectSnapshot is the locked dependency state of a single project.
type ProjectSnapshot struct {
	// Specifiers maps a dependency name to the range declared in the manifest.
	Specifiers map[string]string

	// Dependencies maps a dependency kind to its name -> resolved version map.
	// A kind that is missing from the map was not present in the document.
	Dependencies map[DependencyKind]map[string]string

	DependenciesMeta map[string]DependencyMeta
	PublishDirectory Optional[string]
}

// DependencyMeta carries per-dependency install options.
type DependencyMeta struct {
	Injected bool
	Node     string
	Patch    string
}

// IsZero reports whether the snapshot carries no data at all.
func (s *ProjectSnapshot) IsZero() bool {
	return s.Specifiers == nil &&
		s.Dependencies == nil &&
		s.DependenciesMeta == nil &&
		!s.PublishDirectory.Present()
}

// Project returns the snapshot registered under the given importer id.
func (d *Document) Project(id string) (ProjectSnapshot, bool) {
	importers, ok := d.Importers.Get()
	if !ok {
		return ProjectSnapshot{}, false
	}
	snapshot, ok := importers[id]
	return snapshot, ok
}

// Candidate is a lockfile path the read pipeline may try.
type Candidate struct {
	// Path is the file-system path of the candidate lockfile.
	Path string

	// Rank orders candidates; lower ranks are tried first.
	Rank int

	// AllowAutofix permits automatic resolution of merge-conflict markers.
	AllowAutofix bool
}

// ReadOutcome is the result of a single read attempt.
// A nil Document means no usable lockfile was found.
type ReadOutcome struct {
	Document *Document

	// HadConflicts is true only when conflict markers were present and were resolved.
	HadConflicts bool
}

// ReadOptions controls how the read pipeline selects and gates a lockfile.
type ReadOptions struct {
	// WantedVersions lists acceptable format versions. Empty accepts any version.
	WantedVersions []string

	// IgnoreIncompatible turns an incompatible lockfile into "no lockfile" instead of an error.
	IgnoreIncompatible bool

	// UseBranchVariant tries the branch-scoped lockfile before the default one.
	UseBranchVariant bool
}
