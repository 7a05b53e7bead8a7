package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ArtifactStore keeps generated export files in S3-compatible object storage
// and hands out short-lived download links.
type ArtifactStore struct {
	client *minio.Client
	bucket string
}

// NewArtifactStore connects to the object store and ensures the bucket exists.
func NewArtifactStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*ArtifactStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object store: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &ArtifactStore{client: client, bucket: bucket}, nil
}

// Put uploads an artifact under the given key.
func (a *ArtifactStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload artifact %s: %w", key, err)
	}
	return nil
}

// PresignedURL returns a time-limited download link for a stored artifact.
func (a *ArtifactStore) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := a.client.PresignedGetObject(ctx, a.bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign artifact %s: %w", key, err)
	}
	return u.String(), nil
}
