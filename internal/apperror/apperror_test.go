package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_ErrorMessagePriority(t *testing.T) {
	base := errors.New("base")
	err := &Error{Kind: KindValidation, Msg: "msg", Err: base}
	if err.Error() != "msg" {
		t.Fatalf("expected msg, got %q", err.Error())
	}
}

func TestError_ErrorFallsBackToWrapped(t *testing.T) {
	base := errors.New("base")
	err := &Error{Kind: KindValidation, Err: base}
	if err.Error() != "base" {
		t.Fatalf("expected base, got %q", err.Error())
	}
}

func TestError_ErrorFallsBackToKind(t *testing.T) {
	err := &Error{Kind: KindUndeliverable}
	if err.Error() != string(KindUndeliverable) {
		t.Fatalf("expected kind string, got %q", err.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	base := errors.New("base")
	err := &Error{Kind: KindComputation, Err: base}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to be reachable via errors.Is")
	}
}

func TestIs_MatchesWrappedKind(t *testing.T) {
	err := Undeliverable("x", nil)
	wrapped := fmt.Errorf("wrap: %w", err)
	if !Is(wrapped, KindUndeliverable) {
		t.Fatalf("expected Is to match wrapped kind")
	}
	if Is(wrapped, KindValidation) {
		t.Fatalf("expected Is to be false for different kind")
	}
}

func TestHelperConstructors(t *testing.T) {
	cases := []struct {
		err  error
		kind Kind
	}{
		{Validation("v", nil), KindValidation},
		{Undeliverable("u", nil), KindUndeliverable},
		{MalformedSpec("m", nil), KindMalformedSpec},
		{InvalidMethod("i", nil), KindInvalidMethod},
		{Computation("c", nil), KindComputation},
		{Upstream("up", nil), KindUpstream},
	}
	for _, c := range cases {
		if !Is(c.err, c.kind) {
			t.Fatalf("expected kind %s for %v", c.kind, c.err)
		}
	}
}
