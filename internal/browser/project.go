// Package browser implements the virtual hierarchical namespace over a flat
// object store: projecting folders out of delimiter-scoped listings, the
// per-user navigation state machine, the filtered/sorted view, and the
// clipboard copy/move coordinator.
package browser

import (
	"strings"

	"github.com/quayfm/quay/internal/store"
)

// Folder is a virtual directory derived from a listing. It has no stored
// identity; it is recomputed on every fetch.
type Folder struct {
	// Prefix is the full key prefix, always ending with the delimiter.
	Prefix string
	// DisplayName is the last non-empty path segment of Prefix.
	DisplayName string
}

// Project splits one delimiter-scoped listing into direct-child files and
// direct-child virtual folders.
//
// An entry whose key equals the queried prefix is a folder placeholder object
// and is dropped. Entries not under the prefix should never come back from a
// well-behaved store and are dropped defensively. Keys with a delimiter in
// their remainder group into exactly one folder per distinct first-level
// segment, however many keys share it.
func Project(entries []store.Entry, prefix, delimiter string) ([]store.Entry, []Folder) {
	var files []store.Entry
	var folders []Folder
	seen := make(map[string]bool)

	for _, e := range entries {
		if !strings.HasPrefix(e.Key, prefix) {
			continue
		}
		rest := e.Key[len(prefix):]
		if rest == "" {
			continue
		}
		idx := strings.Index(rest, delimiter)
		if idx < 0 {
			files = append(files, e)
			continue
		}
		name := rest[:idx]
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		folders = append(folders, Folder{
			Prefix:      prefix + name + delimiter,
			DisplayName: name,
		})
	}

	return files, folders
}

// Basename returns the substring of key after the last delimiter.
func Basename(key string) string {
	if idx := strings.LastIndex(key, store.Delimiter); idx >= 0 {
		return key[idx+1:]
	}
	return key
}

// ParentPrefix strips the last delimiter-terminated segment from prefix.
// "a/b/" becomes "a/"; "a/" becomes "".
func ParentPrefix(prefix string) string {
	trimmed := strings.TrimSuffix(prefix, store.Delimiter)
	if idx := strings.LastIndex(trimmed, store.Delimiter); idx >= 0 {
		return trimmed[:idx+1]
	}
	return ""
}
