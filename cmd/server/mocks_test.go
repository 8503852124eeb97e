package main

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"github.com/quayfm/quay/internal/store"
)

// MockObjectStore implements store.ObjectStore for testing
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) ListBuckets(ctx context.Context) ([]store.Bucket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.Bucket), args.Error(1)
}

func (m *MockObjectStore) List(ctx context.Context, bucket, prefix string) ([]store.Entry, error) {
	args := m.Called(ctx, bucket, prefix)
	return args.Get(0).([]store.Entry), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, bucket, key string) error {
	args := m.Called(ctx, bucket, key)
	return args.Error(0)
}

func (m *MockObjectStore) Copy(ctx context.Context, bucket, srcKey, dstKey string) error {
	args := m.Called(ctx, bucket, srcKey, dstKey)
	return args.Error(0)
}

func (m *MockObjectStore) Put(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, bucket, key, r, size, contentType)
	return args.Error(0)
}

func (m *MockObjectStore) PresignedPut(ctx context.Context, bucket, key string, expiry time.Duration) (*url.URL, error) {
	args := m.Called(ctx, bucket, key, expiry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*url.URL), args.Error(1)
}

func (m *MockObjectStore) PresignedGet(ctx context.Context, bucket, key string, expiry time.Duration) (*url.URL, error) {
	args := m.Called(ctx, bucket, key, expiry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*url.URL), args.Error(1)
}

// MockRenderer implements echo.Renderer for testing
type MockRenderer struct{}

func (r *MockRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return nil // Successfully "rendered" nothing
}
