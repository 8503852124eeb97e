package browser

import (
	"context"
	"strings"
	"sync"

	"github.com/quayfm/quay/internal/errs"
	"github.com/quayfm/quay/internal/store"
)

// Location identifies where the session is looking. An empty Bucket means the
// bucket list; Prefix is either empty (bucket root) or delimiter-terminated.
type Location struct {
	Bucket string
	Prefix string
}

// Mode tags a clipboard or drag-and-drop transfer.
type Mode string

const (
	ModeCopy Mode = "copy"
	ModeMove Mode = "move"
)

// ClipboardEntry is the single clipboard slot. At most one is active; it is
// cleared after a successful paste or an explicit cancel.
type ClipboardEntry struct {
	Source store.Entry
	Mode   Mode
}

// Breadcrumb is one navigable segment of the current prefix.
type Breadcrumb struct {
	Name   string
	Prefix string
}

// Session is the browser state machine for one user: current location, the
// listing fetched for it, the search/sort view inputs, and the clipboard.
//
// The listing shown is always the result of exactly one List call for the
// current location. Navigations are not coalesced: each fetch is tagged with
// a sequence number and committed only if no newer navigation was issued in
// the meantime, so a stale response can never overwrite a newer location.
type Session struct {
	mu    sync.Mutex
	store store.ObjectStore

	loc     Location
	buckets []store.Bucket
	files   []store.Entry
	folders []Folder

	search    string
	sort      SortSpec
	clipboard *ClipboardEntry

	transferring bool
	seq          uint64
}

// NewSession creates a session at the bucket-list state with no listing
// loaded yet.
func NewSession(st store.ObjectStore) *Session {
	return &Session{
		store: st,
		sort:  SortSpec{Field: SortByName, Asc: true},
	}
}

// OpenBuckets transitions to the bucket list, clearing any bucket context.
func (s *Session) OpenBuckets(ctx context.Context) error {
	return s.navigate(ctx, Location{})
}

// OpenBucket opens a bucket at its root prefix.
func (s *Session) OpenBucket(ctx context.Context, name string) error {
	if name == "" {
		return errs.New(errs.KindInvalidInput, "bucket name is required")
	}
	return s.navigate(ctx, Location{Bucket: name})
}

// OpenFolder navigates to a prefix within the current bucket. The active
// search filter is cleared: navigation resets the filtering scope.
func (s *Session) OpenFolder(ctx context.Context, prefix string) error {
	s.mu.Lock()
	bucket := s.loc.Bucket
	s.mu.Unlock()
	if bucket == "" {
		return errs.New(errs.KindInvalidInput, "no bucket open")
	}
	if prefix != "" && !strings.HasSuffix(prefix, store.Delimiter) {
		return errs.New(errs.KindInvalidInput, "prefix must end with the delimiter")
	}
	return s.navigate(ctx, Location{Bucket: bucket, Prefix: prefix})
}

// GoUp strips the last prefix segment, or leaves the bucket for the bucket
// list when already at the root.
func (s *Session) GoUp(ctx context.Context) error {
	s.mu.Lock()
	loc := s.loc
	s.mu.Unlock()

	if loc.Bucket == "" {
		return s.navigate(ctx, Location{})
	}
	if loc.Prefix == "" {
		return s.navigate(ctx, Location{})
	}
	return s.navigate(ctx, Location{Bucket: loc.Bucket, Prefix: ParentPrefix(loc.Prefix)})
}

// Refresh re-fetches the current location without changing it or the search.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	loc := s.loc
	s.mu.Unlock()
	return s.fetch(ctx, loc, false)
}

// OpenBreadcrumb rebuilds the prefix from the first i+1 segments and
// navigates there.
func (s *Session) OpenBreadcrumb(ctx context.Context, i int) error {
	crumbs := s.Breadcrumbs()
	if i < 0 || i >= len(crumbs) {
		return errs.New(errs.KindInvalidInput, "breadcrumb index out of range")
	}
	return s.OpenFolder(ctx, crumbs[i].Prefix)
}

// Breadcrumbs returns one entry per segment of the current prefix.
func (s *Session) Breadcrumbs() []Breadcrumb {
	s.mu.Lock()
	prefix := s.loc.Prefix
	s.mu.Unlock()

	if prefix == "" {
		return nil
	}
	var crumbs []Breadcrumb
	path := ""
	for _, part := range strings.Split(strings.TrimSuffix(prefix, store.Delimiter), store.Delimiter) {
		if part == "" {
			continue
		}
		path += part + store.Delimiter
		crumbs = append(crumbs, Breadcrumb{Name: part, Prefix: path})
	}
	return crumbs
}

// Location returns the session's current location.
func (s *Session) Location() Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loc
}

// SetSearch updates the case-insensitive substring filter.
func (s *Session) SetSearch(q string) {
	s.mu.Lock()
	s.search = q
	s.mu.Unlock()
}

// SetSort selects a sort field. Selecting the active field toggles the
// direction; selecting a new field resets to ascending.
func (s *Session) SetSort(field SortField) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sort.Field == field {
		s.sort.Asc = !s.sort.Asc
		return
	}
	s.sort = SortSpec{Field: field, Asc: true}
}

// ClipboardCut places an entry in the clipboard slot for a later move.
func (s *Session) ClipboardCut(source store.Entry) {
	s.setClipboard(source, ModeMove)
}

// ClipboardCopy places an entry in the clipboard slot for a later copy.
func (s *Session) ClipboardCopy(source store.Entry) {
	s.setClipboard(source, ModeCopy)
}

// ClipboardClear cancels the pending clipboard entry.
func (s *Session) ClipboardClear() {
	s.mu.Lock()
	s.clipboard = nil
	s.mu.Unlock()
}

// Clipboard returns a copy of the active clipboard entry, if any.
func (s *Session) Clipboard() *ClipboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clipboard == nil {
		return nil
	}
	cb := *s.clipboard
	return &cb
}

// FindFile looks up a file in the current listing by key.
func (s *Session) FindFile(key string) (store.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.files {
		if f.Key == key {
			return f, true
		}
	}
	return store.Entry{}, false
}

func (s *Session) setClipboard(source store.Entry, mode Mode) {
	s.mu.Lock()
	s.clipboard = &ClipboardEntry{Source: source, Mode: mode}
	s.mu.Unlock()
}

// navigate moves to a new location, clearing the search filter.
func (s *Session) navigate(ctx context.Context, loc Location) error {
	return s.fetch(ctx, loc, true)
}

// fetch issues exactly one listing call for loc and commits the result only
// if this is still the most recently requested navigation. A late result for
// a superseded fetch is discarded without touching state and without error.
func (s *Session) fetch(ctx context.Context, loc Location, clearSearch bool) error {
	s.mu.Lock()
	s.seq++
	token := s.seq
	s.mu.Unlock()

	if loc.Bucket == "" {
		buckets, err := s.store.ListBuckets(ctx)
		return s.commit(token, func() {
			s.loc = Location{}
			s.buckets = buckets
			s.files = nil
			s.folders = nil
			if clearSearch {
				s.search = ""
			}
		}, err)
	}

	entries, err := s.store.List(ctx, loc.Bucket, loc.Prefix)
	var files []store.Entry
	var folders []Folder
	if err == nil {
		files, folders = Project(entries, loc.Prefix, store.Delimiter)
	}
	return s.commit(token, func() {
		s.loc = loc
		s.buckets = nil
		s.files = files
		s.folders = folders
		if clearSearch {
			s.search = ""
		}
	}, err)
}

// commit applies a fetched result under the supersede rule. Fetch failures
// leave local state untouched.
func (s *Session) commit(token uint64, apply func(), err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		return nil
	}
	if err != nil {
		return err
	}
	apply()
	return nil
}
