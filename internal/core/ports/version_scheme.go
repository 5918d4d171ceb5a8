package ports

import "go.trai.ch/locksmith/internal/core/domain"

// VersionScheme expands compact format-version tokens and orders them.
//
//go:generate mockgen -source=version_scheme.go -destination=mocks/mock_version_scheme.go -package=mocks
type VersionScheme interface {
	// Expand maps a compact token such as "6" or "5.4" to a full version.
	Expand(token string) (domain.FormatVersion, error)

	// Compare returns -1, 0 or +1 depending on whether a is lower than, equal to or greater than b.
	Compare(a, b domain.FormatVersion) int
}
