package store

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/quayfm/quay/internal/errs"
)

// MinioStore implements ObjectStore on top of minio-go. It speaks to any
// S3-compatible endpoint, including Cloudflare R2.
type MinioStore struct {
	client *minio.Client
}

// MinioFactory is the production Factory.
type MinioFactory struct{}

func (f *MinioFactory) New(opts Options) (ObjectStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, errs.Wrap(errs.KindStoreUnavailable, "failed to create store client", err)
	}
	return &MinioStore{client: client}, nil
}

func (s *MinioStore) ListBuckets(ctx context.Context) ([]Bucket, error) {
	infos, err := s.client.ListBuckets(ctx)
	if err != nil {
		return nil, classify("list buckets", err)
	}
	buckets := make([]Bucket, 0, len(infos))
	for _, b := range infos {
		buckets = append(buckets, Bucket{Name: b.Name, CreationDate: b.CreationDate})
	}
	return buckets, nil
}

func (s *MinioStore) List(ctx context.Context, bucket, prefix string) ([]Entry, error) {
	var entries []Entry
	// Non-recursive listing surfaces common prefixes alongside objects.
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}) {
		if obj.Err != nil {
			return nil, classify("list objects", obj.Err)
		}
		entries = append(entries, Entry{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return entries, nil
}

func (s *MinioStore) Delete(ctx context.Context, bucket, key string) error {
	if err := s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return classify("delete object", err)
	}
	return nil
}

func (s *MinioStore) Copy(ctx context.Context, bucket, srcKey, dstKey string) error {
	_, err := s.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: bucket, Object: dstKey},
		minio.CopySrcOptions{Bucket: bucket, Object: srcKey},
	)
	if err != nil {
		return classify("copy object", err)
	}
	return nil
}

func (s *MinioStore) Put(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return classify("put object", err)
	}
	return nil
}

func (s *MinioStore) PresignedPut(ctx context.Context, bucket, key string, expiry time.Duration) (*url.URL, error) {
	u, err := s.client.PresignedPutObject(ctx, bucket, key, expiry)
	if err != nil {
		return nil, classify("presign upload", err)
	}
	return u, nil
}

func (s *MinioStore) PresignedGet(ctx context.Context, bucket, key string, expiry time.Duration) (*url.URL, error) {
	u, err := s.client.PresignedGetObject(ctx, bucket, key, expiry, nil)
	if err != nil {
		return nil, classify("presign download", err)
	}
	return u, nil
}

// classify maps a minio error to the shared taxonomy. Anything that is not a
// clear not-found is treated as the store being unavailable for the call.
func classify(op string, err error) error {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket":
		return errs.Wrap(errs.KindNotFound, op, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return errs.Wrap(errs.KindNotFound, op, err)
	}
	return errs.Wrap(errs.KindStoreUnavailable, op, err)
}
