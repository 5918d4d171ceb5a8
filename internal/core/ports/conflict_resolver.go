package ports

// ConflictResolver detects and resolves version-control merge-conflict markers in lockfile text.
//
//go:generate mockgen -source=conflict_resolver.go -destination=mocks/mock_conflict_resolver.go -package=mocks
type ConflictResolver interface {
	// HasConflicts reports whether data contains unresolved conflict markers.
	HasConflicts(data []byte) bool

	// Resolve merges the conflicting sides into a single document text.
	// It fails when the conflict cannot be resolved.
	Resolve(data []byte) ([]byte, error)
}
