package compat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/locksmith/internal/adapters/semver"
	"go.trai.ch/locksmith/internal/core/domain"
	"go.trai.ch/locksmith/internal/core/ports/mocks"
	"go.trai.ch/locksmith/internal/engine/compat"
	"go.uber.org/mock/gomock"
)

func newGate() *compat.Gate {
	return compat.NewGate(semver.NewScheme())
}

func TestGate_EmptyWantedAcceptsAnything(t *testing.T) {
	gate := newGate()

	for _, token := range []domain.Optional[string]{
		domain.None[string](),
		domain.Some("6.0"),
		domain.Some("99"),
		domain.Some("not-a-version"),
	} {
		verdict, err := gate.Evaluate(token, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.VerdictAccept, verdict.Kind)
		assert.Empty(t, verdict.Message)
	}
}

func TestGate_EmptyWantedDoesNotExpand(t *testing.T) {
	ctrl := gomock.NewController(t)
	scheme := mocks.NewMockVersionScheme(ctrl)

	verdict, err := compat.NewGate(scheme).Evaluate(domain.Some("6.0"), []string{})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictAccept, verdict.Kind)
}

func TestGate_Evaluate(t *testing.T) {
	tests := []struct {
		name   string
		token  domain.Optional[string]
		wanted []string
		want   domain.VerdictKind
	}{
		{"equal", domain.Some("6.0"), []string{"6.0"}, domain.VerdictAccept},
		{"compact equal", domain.Some("6"), []string{"6.0"}, domain.VerdictAccept},
		{"older same major", domain.Some("5.3"), []string{"5.4"}, domain.VerdictAccept},
		{"newer same major", domain.Some("5.4"), []string{"5.3"}, domain.VerdictAcceptWithWarning},
		{"newer same major two components", domain.Some("6.2"), []string{"6.0"}, domain.VerdictAcceptWithWarning},
		{"transitional carve-out", domain.Some("6.1"), []string{"6.0"}, domain.VerdictAccept},
		{"transitional when equal", domain.Some("6.1"), []string{"6.1"}, domain.VerdictAccept},
		{"major mismatch", domain.Some("7.0"), []string{"6.0"}, domain.VerdictReject},
		{"older major", domain.Some("5.4"), []string{"6.0"}, domain.VerdictReject},
		{"second wanted eligible", domain.Some("5.4"), []string{"6.0", "5.4"}, domain.VerdictAccept},
		{"absent token uses baseline", domain.None[string](), []string{"6.0"}, domain.VerdictReject},
		{"absent token baseline matches zero", domain.None[string](), []string{"0.1"}, domain.VerdictAccept},
		{"first eligible decides", domain.Some("6.2"), []string{"6.0", "6.5"}, domain.VerdictAcceptWithWarning},
	}

	gate := newGate()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, err := gate.Evaluate(tt.token, tt.wanted)
			require.NoError(t, err)
			assert.Equal(t, tt.want, verdict.Kind)
		})
	}
}

func TestGate_WarningMessageNamesWantedVersion(t *testing.T) {
	verdict, err := newGate().Evaluate(domain.Some("5.4"), []string{"5.3"})
	require.NoError(t, err)

	assert.Equal(t, domain.VerdictAcceptWithWarning, verdict.Kind)
	assert.True(t, verdict.Accepted())
	assert.Contains(t, verdict.Message, "newer version")
	assert.Contains(t, verdict.Message, "downgraded to version 5.3")
}

func TestGate_RejectMessage(t *testing.T) {
	verdict, err := newGate().Evaluate(domain.Some("7.0"), []string{"6.0", "6.1"})
	require.NoError(t, err)

	assert.False(t, verdict.Accepted())
	assert.Contains(t, verdict.Message, "7.0")
	assert.Contains(t, verdict.Message, "6.0, 6.1")
}

func TestGate_InvalidFormatVersion(t *testing.T) {
	_, err := newGate().Evaluate(domain.Some("six"), []string{"6.0"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFormatVersion)
}

func TestGate_InvalidWantedVersion(t *testing.T) {
	_, err := newGate().Evaluate(domain.Some("6.0"), []string{"latest"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidWantedVersion)
}

func TestGate_InvalidWantedVersionAfterMatchIsNotEvaluated(t *testing.T) {
	verdict, err := newGate().Evaluate(domain.Some("6.0"), []string{"6.0", "latest"})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictAccept, verdict.Kind)
}

// Same-major tokens that do not exceed any wanted version are always accepted.
func TestGate_SameMajorNotGreaterProperty(t *testing.T) {
	gate := newGate()
	for minor := 0; minor <= 9; minor++ {
		for wantedMinor := minor; wantedMinor <= 9; wantedMinor++ {
			token := "5." + string(rune('0'+minor))
			wanted := "5." + string(rune('0'+wantedMinor))

			verdict, err := gate.Evaluate(domain.Some(token), []string{wanted})
			require.NoError(t, err)
			assert.Equal(t, domain.VerdictAccept, verdict.Kind, "token %s wanted %s", token, wanted)
		}
	}
}

// Same-major tokens strictly newer than the wanted version always warn, except the carve-out.
func TestGate_StrictlyGreaterProperty(t *testing.T) {
	gate := newGate()
	for minor := 1; minor <= 9; minor++ {
		token := "6." + string(rune('0'+minor))

		verdict, err := gate.Evaluate(domain.Some(token), []string{"6.0"})
		require.NoError(t, err)

		want := domain.VerdictAcceptWithWarning
		if token == domain.TransitionalFormatVersion {
			want = domain.VerdictAccept
		}
		assert.Equal(t, want, verdict.Kind, "token %s", token)
	}
}
