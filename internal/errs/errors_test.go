package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestPredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"store unavailable", New(KindStoreUnavailable, "down"), IsStoreUnavailable, true},
		{"not found", New(KindNotFound, "gone"), IsNotFound, true},
		{"noop", New(KindNoOpTransfer, "same place"), IsNoOpTransfer, true},
		{"invalid input", New(KindInvalidInput, "bad"), IsInvalidInput, true},
		{"kind mismatch", New(KindNotFound, "gone"), IsStoreUnavailable, false},
		{"plain error", errors.New("plain"), IsNotFound, false},
		{"nil", nil, IsNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPredicatesTraverseWrapping(t *testing.T) {
	inner := Wrap(KindStoreUnavailable, "list objects", errors.New("connection refused"))
	outer := fmt.Errorf("loading bucket: %w", inner)

	if !IsStoreUnavailable(outer) {
		t.Error("predicate failed through fmt.Errorf wrapping")
	}
}

func TestPartialTransferCarriesKeys(t *testing.T) {
	cause := errors.New("delete refused")
	err := PartialTransfer("a/src.txt", "b/src.txt", cause)

	if !IsPartialTransfer(err) {
		t.Fatal("not classified as partial transfer")
	}
	if err.SourceKey != "a/src.txt" || err.DestKey != "b/src.txt" {
		t.Errorf("keys = %q, %q", err.SourceKey, err.DestKey)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}

func TestErrorString(t *testing.T) {
	err := Wrap(KindNotFound, "object missing", errors.New("NoSuchKey"))
	want := "[not_found] object missing: NoSuchKey"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := New(KindInvalidInput, "bad prefix")
	if bare.Error() != "[invalid_input] bad prefix" {
		t.Errorf("Error() = %q", bare.Error())
	}
}
