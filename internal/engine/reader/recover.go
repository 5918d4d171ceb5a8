package reader

import (
	"errors"

	"go.trai.ch/locksmith/internal/core/domain"
	"go.trai.ch/locksmith/internal/core/ports"
)

// Recoverer repairs lockfile text that still carries merge-conflict markers.
type Recoverer struct {
	resolver ports.ConflictResolver
}

// NewRecoverer creates a new Recoverer delegating to resolver.
func NewRecoverer(resolver ports.ConflictResolver) *Recoverer {
	return &Recoverer{resolver: resolver}
}

// Recover returns the text to parse and whether conflicts were resolved.
//
// Text without markers, or any text when autofix is not allowed, is returned
// untouched. A failed resolution is a domain.ErrBrokenLockfile error.
func (r *Recoverer) Recover(data []byte, allowAutofix bool) ([]byte, bool, error) {
	if !allowAutofix || !r.resolver.HasConflicts(data) {
		return data, false, nil
	}

	merged, err := r.resolver.Resolve(data)
	if err != nil {
		return nil, false, errors.Join(domain.ErrBrokenLockfile, err)
	}
	return merged, true, nil
}
