// Package semver expands compact lockfile format versions into semantic versions.
package semver

import (
	"strings"

	mmsemver "github.com/Masterminds/semver/v3"
	"go.trai.ch/locksmith/internal/core/domain"
	"go.trai.ch/locksmith/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionScheme = (*Scheme)(nil)

// Scheme implements ports.VersionScheme.
//
// Tokens are expanded by padding missing components with zero:
// "6" becomes 6.0.0 and "5.4" becomes 5.4.0. Three-component tokens are used
// as they are. The padded text must then be a strict semantic version without
// pre-release or build metadata.
type Scheme struct{}

// NewScheme creates a new Scheme.
func NewScheme() *Scheme {
	return &Scheme{}
}

// Expand maps a compact token to a full format version.
func (s *Scheme) Expand(token string) (domain.FormatVersion, error) {
	expanded, err := expand(token)
	if err != nil {
		return domain.FormatVersion{}, zerr.With(err, "token", token)
	}

	v, err := mmsemver.StrictNewVersion(expanded)
	if err != nil {
		return domain.FormatVersion{}, zerr.With(zerr.Wrap(err, "invalid version token"), "token", token)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return domain.FormatVersion{}, zerr.With(zerr.New("version token must not carry pre-release or build metadata"), "token", token)
	}

	return domain.FormatVersion{
		Raw:   token,
		Major: v.Major(),
		Minor: v.Minor(),
		Patch: v.Patch(),
	}, nil
}

// Compare orders two expanded versions.
func (s *Scheme) Compare(a, b domain.FormatVersion) int {
	return toSemver(a).Compare(toSemver(b))
}

func expand(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", zerr.New("empty version token")
	}

	switch parts := strings.Split(token, "."); len(parts) {
	case 1:
		return token + ".0.0", nil
	case 2:
		return token + ".0", nil
	case 3:
		return token, nil
	default:
		return "", zerr.New("version token has too many components")
	}
}

func toSemver(v domain.FormatVersion) *mmsemver.Version {
	return mmsemver.New(v.Major, v.Minor, v.Patch, "", "")
}
