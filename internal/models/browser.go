// Package models contains render-ready structures passed to templates.
package models

// BucketRow is one bucket on the bucket list page.
type BucketRow struct {
	Name    string
	Created string
}

// ObjectRow is one file in the browser listing.
type ObjectRow struct {
	Key           string
	DisplayName   string
	Size          int64
	FormattedSize string
	Modified      string
	ContentType   string
	InClipboard   bool
}

// FolderRow is one virtual folder in the browser listing.
type FolderRow struct {
	Name   string
	Prefix string
}

// Breadcrumb is one navigable prefix segment.
type Breadcrumb struct {
	Name  string
	Index int
}

// ClipboardBar describes the pending clipboard entry shown above the listing.
type ClipboardBar struct {
	Key  string
	Mode string
}
