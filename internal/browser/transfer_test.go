package browser

import (
	"context"
	"errors"
	"testing"

	"github.com/quayfm/quay/internal/errs"
	"github.com/quayfm/quay/internal/store"
)

func transferSession(t *testing.T) (*Session, *fakeStore) {
	t.Helper()
	fs := newFakeStore()
	fs.entries["b"] = []store.Entry{
		{Key: "readme.txt", Size: 1},
		{Key: "docs/guide.pdf", Size: 2},
	}
	s := NewSession(fs)
	if err := s.OpenBucket(context.Background(), "b"); err != nil {
		t.Fatalf("OpenBucket: %v", err)
	}
	return s, fs
}

func TestTransferCopy(t *testing.T) {
	s, fs := transferSession(t)

	err := s.Transfer(context.Background(), store.Entry{Key: "readme.txt"}, "docs/", ModeCopy)
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}

	if len(fs.copyCalls) != 1 || fs.copyCalls[0] != "readme.txt -> docs/readme.txt" {
		t.Errorf("copy calls = %v", fs.copyCalls)
	}
	if len(fs.deleteCalls) != 0 {
		t.Errorf("copy must not delete the source: %v", fs.deleteCalls)
	}
}

func TestTransferMoveDeletesSourceAfterCopy(t *testing.T) {
	s, fs := transferSession(t)

	err := s.Transfer(context.Background(), store.Entry{Key: "readme.txt"}, "docs/", ModeMove)
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}

	if len(fs.copyCalls) != 1 || len(fs.deleteCalls) != 1 {
		t.Errorf("calls: copy=%v delete=%v", fs.copyCalls, fs.deleteCalls)
	}
	if fs.deleteCalls[0] != "readme.txt" {
		t.Errorf("deleted %q", fs.deleteCalls[0])
	}
}

func TestTransferNoOpIssuesNoStoreCalls(t *testing.T) {
	s, fs := transferSession(t)

	err := s.Transfer(context.Background(), store.Entry{Key: "docs/guide.pdf"}, "docs/", ModeMove)
	if !errs.IsNoOpTransfer(err) {
		t.Fatalf("expected NoOpTransfer, got %v", err)
	}

	if len(fs.copyCalls) != 0 || len(fs.deleteCalls) != 0 {
		t.Errorf("no-op transfer touched the store: copy=%v delete=%v", fs.copyCalls, fs.deleteCalls)
	}
}

func TestTransferCopyFailureSkipsDelete(t *testing.T) {
	s, fs := transferSession(t)
	fs.copyErr = errs.Wrap(errs.KindStoreUnavailable, "copy object", errors.New("boom"))

	err := s.Transfer(context.Background(), store.Entry{Key: "readme.txt"}, "docs/", ModeMove)
	if !errs.IsStoreUnavailable(err) {
		t.Fatalf("expected store unavailable, got %v", err)
	}
	if len(fs.deleteCalls) != 0 {
		t.Errorf("source deleted despite failed copy: %v", fs.deleteCalls)
	}
}

func TestTransferMoveDeleteFailureIsPartial(t *testing.T) {
	s, fs := transferSession(t)
	fs.deleteErr = errs.Wrap(errs.KindStoreUnavailable, "remove object", errors.New("boom"))

	err := s.Transfer(context.Background(), store.Entry{Key: "readme.txt"}, "docs/", ModeMove)
	if !errs.IsPartialTransfer(err) {
		t.Fatalf("expected PartialTransfer, got %v", err)
	}

	var terr *errs.Error
	if !errors.As(err, &terr) {
		t.Fatal("expected *errs.Error")
	}
	if terr.SourceKey != "readme.txt" || terr.DestKey != "docs/readme.txt" {
		t.Errorf("partial transfer keys: %+v", terr)
	}
}

func TestTransferRejectsUnknownMode(t *testing.T) {
	s, _ := transferSession(t)

	err := s.Transfer(context.Background(), store.Entry{Key: "readme.txt"}, "docs/", Mode("teleport"))
	if !errs.IsInvalidInput(err) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestPasteClearsClipboardOnSuccess(t *testing.T) {
	s, _ := transferSession(t)

	s.ClipboardCopy(store.Entry{Key: "readme.txt"})
	if err := s.Paste(context.Background(), "docs/"); err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if s.Clipboard() != nil {
		t.Error("clipboard not cleared after successful paste")
	}
}

func TestPasteKeepsClipboardOnFailure(t *testing.T) {
	s, fs := transferSession(t)
	fs.copyErr = errs.Wrap(errs.KindStoreUnavailable, "copy object", errors.New("boom"))

	s.ClipboardCopy(store.Entry{Key: "readme.txt"})
	if err := s.Paste(context.Background(), "docs/"); err == nil {
		t.Fatal("expected paste to fail")
	}
	if s.Clipboard() == nil {
		t.Error("clipboard dropped after failed paste")
	}
}

func TestPasteEmptyClipboard(t *testing.T) {
	s, _ := transferSession(t)

	if err := s.Paste(context.Background(), "docs/"); !errs.IsInvalidInput(err) {
		t.Errorf("expected invalid input, got %v", err)
	}
}
