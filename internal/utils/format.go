// Package utils provides shared formatting and URL helpers.
package utils

import (
	"fmt"
	"time"
)

// FormatFileSize converts a size in bytes to a human-readable string
// (e.g. "1.5 GB").
func FormatFileSize(size int64) string {
	if size < 0 {
		return "0 B"
	}
	const unit = int64(1024)
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := unit, 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// FormatModified renders an object timestamp for listing rows.
func FormatModified(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 02, 2006 15:04")
}
