// Package compat decides whether a lockfile format version can be consumed.
package compat

import (
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/locksmith/internal/core/domain"
	"go.trai.ch/locksmith/internal/core/ports"
	"go.trai.ch/zerr"
)

// Gate evaluates a declared format version against the wanted versions.
type Gate struct {
	scheme ports.VersionScheme
}

// NewGate creates a new Gate using scheme to expand and order versions.
func NewGate(scheme ports.VersionScheme) *Gate {
	return &Gate{scheme: scheme}
}

// Evaluate returns the verdict for a document declaring token.
//
// An empty wanted set accepts anything without looking at the token. Otherwise
// the first wanted version sharing the document's major version decides: the
// document is accepted, with a downgrade warning when it is strictly newer
// (unless it declares the transitional version). If no wanted version shares
// the major version the document is rejected.
//
// A malformed token fails with domain.ErrInvalidFormatVersion and a malformed
// wanted version with domain.ErrInvalidWantedVersion.
func (g *Gate) Evaluate(token domain.Optional[string], wanted []string) (domain.Verdict, error) {
	if len(wanted) == 0 {
		return domain.Accept(), nil
	}

	raw := token.OrElse(domain.BaselineFormatVersion)
	current, err := g.scheme.Expand(raw)
	if err != nil {
		return domain.Verdict{}, zerr.With(errors.Join(domain.ErrInvalidFormatVersion, err), "lockfile_version", raw)
	}

	for _, entry := range wanted {
		want, err := g.scheme.Expand(entry)
		if err != nil {
			return domain.Verdict{}, zerr.With(errors.Join(domain.ErrInvalidWantedVersion, err), "wanted_version", entry)
		}

		if want.Major != current.Major {
			continue
		}

		if g.scheme.Compare(current, want) > 0 && raw != domain.TransitionalFormatVersion {
			return domain.AcceptWithWarning(fmt.Sprintf(
				"Your lockfile was generated by a newer version of the package manager. "+
					"It is a compatible version but it might get downgraded to version %s",
				want.Raw,
			)), nil
		}
		return domain.Accept(), nil
	}

	return domain.Reject(fmt.Sprintf(
		"lockfile version %s is not compatible with the wanted versions (%s)",
		raw, strings.Join(wanted, ", "),
	)), nil
}
