package domain_test

import (
	"testing"

	"go.trai.ch/locksmith/internal/core/domain"
)

func TestOptional(t *testing.T) {
	some := domain.Some("")
	if v, ok := some.Get(); !ok || v != "" {
		t.Errorf("expected present empty string, got %q, %v", v, ok)
	}

	none := domain.None[string]()
	if none.Present() {
		t.Error("expected None to be absent")
	}
	if got := none.OrElse("fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := domain.Some(false).OrElse(true); got {
		t.Error("expected held false to win over default")
	}
}

func TestVerdict_Accepted(t *testing.T) {
	if !domain.Accept().Accepted() {
		t.Error("accept must be accepted")
	}
	if !domain.AcceptWithWarning("newer").Accepted() {
		t.Error("accept-with-warning must be accepted")
	}
	if domain.Reject("nope").Accepted() {
		t.Error("reject must not be accepted")
	}
}
