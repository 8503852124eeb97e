package browser

import (
	"sort"
	"strings"

	"github.com/quayfm/quay/internal/store"
)

// SortField selects which file attribute orders the listing.
type SortField string

const (
	SortByName SortField = "name"
	SortBySize SortField = "size"
	SortByDate SortField = "date"
)

// SortSpec is the active file ordering. Folders are never size/date sorted.
type SortSpec struct {
	Field SortField
	Asc   bool
}

// ViewState is the derived, render-ready snapshot of a session. It is a pure
// function of the session's listing, search, and sort inputs; recomputing it
// never touches the store.
type ViewState struct {
	Location    Location
	Buckets     []store.Bucket
	Files       []store.Entry
	Folders     []Folder
	Search      string
	Sort        SortSpec
	Clipboard   *ClipboardEntry
	Breadcrumbs []Breadcrumb
}

// View derives the current filtered and sorted state for rendering.
func (s *Session) View() ViewState {
	s.mu.Lock()
	loc := s.loc
	buckets := append([]store.Bucket(nil), s.buckets...)
	files := append([]store.Entry(nil), s.files...)
	folders := append([]Folder(nil), s.folders...)
	search := s.search
	spec := s.sort
	var cb *ClipboardEntry
	if s.clipboard != nil {
		c := *s.clipboard
		cb = &c
	}
	s.mu.Unlock()

	return ViewState{
		Location:    loc,
		Buckets:     buckets,
		Files:       sortFiles(filterFiles(files, search), spec),
		Folders:     sortFolders(filterFolders(folders, search)),
		Search:      search,
		Sort:        spec,
		Clipboard:   cb,
		Breadcrumbs: s.Breadcrumbs(),
	}
}

// filterFiles keeps files whose key contains the search substring,
// case-insensitively.
func filterFiles(files []store.Entry, search string) []store.Entry {
	if search == "" {
		return files
	}
	needle := strings.ToLower(search)
	kept := files[:0]
	for _, f := range files {
		if strings.Contains(strings.ToLower(f.Key), needle) {
			kept = append(kept, f)
		}
	}
	return kept
}

// filterFolders keeps folders whose display name contains the search
// substring, case-insensitively. Folders and files filter independently.
func filterFolders(folders []Folder, search string) []Folder {
	if search == "" {
		return folders
	}
	needle := strings.ToLower(search)
	kept := folders[:0]
	for _, f := range folders {
		if strings.Contains(strings.ToLower(f.DisplayName), needle) {
			kept = append(kept, f)
		}
	}
	return kept
}

func sortFiles(files []store.Entry, spec SortSpec) []store.Entry {
	sort.SliceStable(files, func(i, j int) bool {
		var less bool
		switch spec.Field {
		case SortBySize:
			less = files[i].Size < files[j].Size
		case SortByDate:
			less = files[i].LastModified.Before(files[j].LastModified)
		default:
			less = files[i].Key < files[j].Key
		}
		if !spec.Asc {
			return !less && !equalOn(files[i], files[j], spec.Field)
		}
		return less
	})
	return files
}

func equalOn(a, b store.Entry, field SortField) bool {
	switch field {
	case SortBySize:
		return a.Size == b.Size
	case SortByDate:
		return a.LastModified.Equal(b.LastModified)
	default:
		return a.Key == b.Key
	}
}

// sortFolders alphabetizes folders by display name. The ordering of folders
// is presentational only and not affected by the file SortSpec.
func sortFolders(folders []Folder) []Folder {
	sort.SliceStable(folders, func(i, j int) bool {
		return folders[i].DisplayName < folders[j].DisplayName
	})
	return folders
}
