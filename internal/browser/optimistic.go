package browser

import (
	"context"

	"github.com/quayfm/quay/internal/errs"
	"github.com/quayfm/quay/internal/store"
)

// runOptimistic applies a local mutation before the remote operation and
// reverts it if the operation fails. The revert must restore the captured
// state exactly, not merge, so the local listing never drifts from what the
// store confirmed.
func runOptimistic(apply, revert func(), op func() error) error {
	apply()
	if err := op(); err != nil {
		revert()
		return err
	}
	return nil
}

// DeleteEntry removes an object with local-first semantics: the entry
// disappears from the listing immediately, then the store delete is issued.
// On failure the pre-mutation listing is restored verbatim and the error is
// returned; a NotFound means the key vanished since the last listing and the
// caller should refresh.
//
// Copy and move deliberately do not go through this path: their
// destination-side effects are not locally representable without a second
// round-trip, so they wait for confirmation and re-fetch instead.
func (s *Session) DeleteEntry(ctx context.Context, key string) error {
	s.mu.Lock()
	bucket := s.loc.Bucket
	if bucket == "" {
		s.mu.Unlock()
		return errs.New(errs.KindInvalidInput, "no bucket open")
	}
	snapshot := append([]store.Entry(nil), s.files...)
	s.mu.Unlock()

	apply := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		kept := make([]store.Entry, 0, len(s.files))
		for _, f := range s.files {
			if f.Key != key {
				kept = append(kept, f)
			}
		}
		s.files = kept
	}
	revert := func() {
		s.mu.Lock()
		s.files = snapshot
		s.mu.Unlock()
	}
	return runOptimistic(apply, revert, func() error {
		return s.store.Delete(ctx, bucket, key)
	})
}
