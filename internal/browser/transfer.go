package browser

import (
	"context"
	"fmt"

	"github.com/quayfm/quay/internal/errs"
	"github.com/quayfm/quay/internal/store"
)

// Transfer copies or moves one object into a destination folder within the
// current bucket. The destination key is targetPrefix plus the source's
// basename.
//
// If the destination equals the source, no store call is issued and a
// NoOpTransfer is reported: the object is already where it would land.
// For a move, the source is deleted only after the copy succeeds; a delete
// failure after a successful copy leaves the object at both keys and is
// reported as a distinct PartialTransfer error, never as success.
//
// On success the matching clipboard entry, if any, is cleared. The caller is
// expected to refresh the listing.
func (s *Session) Transfer(ctx context.Context, source store.Entry, targetPrefix string, mode Mode) error {
	if mode != ModeCopy && mode != ModeMove {
		return errs.New(errs.KindInvalidInput, fmt.Sprintf("unknown transfer mode %q", mode))
	}

	s.mu.Lock()
	bucket := s.loc.Bucket
	if bucket == "" {
		s.mu.Unlock()
		return errs.New(errs.KindInvalidInput, "no bucket open")
	}
	if s.transferring {
		s.mu.Unlock()
		return errs.New(errs.KindInvalidInput, "a transfer is already in progress")
	}
	s.transferring = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.transferring = false
		s.mu.Unlock()
	}()

	destKey := targetPrefix + Basename(source.Key)
	if destKey == source.Key {
		return errs.New(errs.KindNoOpTransfer, fmt.Sprintf("%q is already at the destination", source.Key))
	}

	if err := s.store.Copy(ctx, bucket, source.Key, destKey); err != nil {
		return err
	}
	if mode == ModeMove {
		if err := s.store.Delete(ctx, bucket, source.Key); err != nil {
			return errs.PartialTransfer(source.Key, destKey, err)
		}
	}

	s.mu.Lock()
	if s.clipboard != nil && s.clipboard.Source.Key == source.Key {
		s.clipboard = nil
	}
	s.mu.Unlock()
	return nil
}

// Paste executes the pending clipboard entry against targetPrefix.
func (s *Session) Paste(ctx context.Context, targetPrefix string) error {
	cb := s.Clipboard()
	if cb == nil {
		return errs.New(errs.KindInvalidInput, "clipboard is empty")
	}
	return s.Transfer(ctx, cb.Source, targetPrefix, cb.Mode)
}
