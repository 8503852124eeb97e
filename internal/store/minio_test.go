package store

import (
	"errors"
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7"

	"github.com/quayfm/quay/internal/errs"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"no such key", minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound}, errs.IsNotFound},
		{"no such bucket", minio.ErrorResponse{Code: "NoSuchBucket", StatusCode: http.StatusNotFound}, errs.IsNotFound},
		{"bare 404", minio.ErrorResponse{StatusCode: http.StatusNotFound}, errs.IsNotFound},
		{"access denied", minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden}, errs.IsStoreUnavailable},
		{"network error", errors.New("connection refused"), errs.IsStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("test op", tt.err)
			if !tt.check(got) {
				t.Errorf("classify(%v) = %v, wrong kind", tt.err, got)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("original error not preserved in chain")
			}
		})
	}
}

func TestEntryIsPrefix(t *testing.T) {
	if !(Entry{Key: "docs/"}).IsPrefix() {
		t.Error("trailing-delimiter key should be a prefix")
	}
	if (Entry{Key: "docs/readme.txt"}).IsPrefix() {
		t.Error("plain key should not be a prefix")
	}
}

func TestMinioFactoryRejectsBadEndpoint(t *testing.T) {
	f := &MinioFactory{}
	_, err := f.New(Options{Endpoint: "://not a host", AccessKey: "a", SecretKey: "b"})
	if !errs.IsStoreUnavailable(err) {
		t.Errorf("expected store unavailable for bad endpoint, got %v", err)
	}
}
