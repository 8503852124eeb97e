// Package store defines the object store interface the browser core consumes.
//
// The store is a flat key-value namespace: it has no native folders. Listing
// with a delimiter returns objects directly under a prefix plus the immediate
// child prefixes; everything hierarchical is derived by the browser package.
package store

import (
	"context"
	"io"
	"net/url"
	"time"
)

// Delimiter is the character used to group keys into virtual folders.
const Delimiter = "/"

// Bucket is a top-level namespace in the object store.
type Bucket struct {
	Name         string
	CreationDate time.Time
}

// Entry is a single object summary from a listing. In a delimiter-scoped
// listing, common prefixes arrive as entries whose Key ends with the
// delimiter and whose Size is zero, matching the minio-go non-recursive
// listing shape.
type Entry struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// IsPrefix reports whether the entry represents a common prefix (virtual
// folder boundary) rather than a plain object.
func (e Entry) IsPrefix() bool {
	return len(e.Key) > 0 && e.Key[len(e.Key)-1] == Delimiter[0]
}

// ObjectStore is the set of remote operations the browser core needs.
// All failures are returned as *errs.Error with a classified kind.
type ObjectStore interface {
	// ListBuckets returns all buckets reachable with the configured credentials.
	ListBuckets(ctx context.Context) ([]Bucket, error)

	// List performs one delimiter-scoped listing at (bucket, prefix).
	// The result contains direct-child objects and common prefixes; it is
	// not projected into files/folders here.
	List(ctx context.Context, bucket, prefix string) ([]Entry, error)

	// Delete removes a single object.
	Delete(ctx context.Context, bucket, key string) error

	// Copy duplicates srcKey to dstKey within the same bucket.
	Copy(ctx context.Context, bucket, srcKey, dstKey string) error

	// Put writes an object. Used for zero-byte folder markers; uploads go
	// through presigned URLs instead.
	Put(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error

	// PresignedPut returns a time-limited URL the client PUTs the file to
	// directly, without routing the payload through this server.
	PresignedPut(ctx context.Context, bucket, key string, expiry time.Duration) (*url.URL, error)

	// PresignedGet returns a time-limited download/share URL.
	PresignedGet(ctx context.Context, bucket, key string, expiry time.Duration) (*url.URL, error)
}

// Options holds the connection settings for a store backend.
type Options struct {
	Endpoint  string // host:port, e.g. "<account>.r2.cloudflarestorage.com"
	AccessKey string
	SecretKey string
	Region    string // "auto" for R2
	UseSSL    bool
}

// Factory creates connected stores. Tests substitute their own implementation.
type Factory interface {
	New(opts Options) (ObjectStore, error)
}
