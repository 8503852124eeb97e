package browser

import (
	"context"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/quayfm/quay/internal/store"
)

// fakeStore is an in-memory ObjectStore for session tests. Per-method error
// and blocking hooks let tests script failures and in-flight races.
type fakeStore struct {
	mu      sync.Mutex
	buckets []store.Bucket
	entries map[string][]store.Entry // bucket -> entries

	listErr   error
	copyErr   error
	deleteErr error

	// blockList, when set, is closed-on-demand to release an in-flight List.
	blockList chan struct{}

	copyCalls   []string
	deleteCalls []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: make(map[string][]store.Entry)}
}

func (f *fakeStore) ListBuckets(ctx context.Context) ([]store.Bucket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]store.Bucket(nil), f.buckets...), nil
}

func (f *fakeStore) List(ctx context.Context, bucket, prefix string) ([]store.Entry, error) {
	f.mu.Lock()
	block := f.blockList
	f.mu.Unlock()
	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]store.Entry(nil), f.entries[bucket]...), nil
}

func (f *fakeStore) Delete(ctx context.Context, bucket, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls = append(f.deleteCalls, key)
	return f.deleteErr
}

func (f *fakeStore) Copy(ctx context.Context, bucket, srcKey, dstKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.copyCalls = append(f.copyCalls, srcKey+" -> "+dstKey)
	return f.copyErr
}

func (f *fakeStore) Put(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error {
	return nil
}

func (f *fakeStore) PresignedPut(ctx context.Context, bucket, key string, expiry time.Duration) (*url.URL, error) {
	return url.Parse("https://fake.store/" + bucket + "/" + key)
}

func (f *fakeStore) PresignedGet(ctx context.Context, bucket, key string, expiry time.Duration) (*url.URL, error) {
	return url.Parse("https://fake.store/" + bucket + "/" + key)
}
