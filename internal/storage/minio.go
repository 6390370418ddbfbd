package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Tazrian08/Organizer/internal/config"
)

// minioStorage implements the BlobStore gateway over an S3-compatible backend
// (MinIO, AWS S3, etc.). It is safe for concurrent use by multiple goroutines.
type minioStorage struct {
	client    *minio.Client
	bucket    string
	namespace string
	endpoint  *url.URL
}

// NewMinIO creates a new S3-compatible blob gateway backed by MinIO.
// It validates connectivity and ensures the bucket exists (creates it if missing).
func NewMinIO(cfg config.MinIOConfig) (BlobStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}
	if cfg.Namespace == "" {
		return nil, fmt.Errorf("storage namespace is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ms := &minioStorage{
		client:    cli,
		bucket:    cfg.Bucket,
		namespace: cfg.Namespace,
		endpoint:  cli.EndpointURL(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ensure bucket exists.
	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return ms, nil
}

// Store uploads an object using streaming I/O only (no local disk).
// The object name is a fresh UUID plus the original extension, namespaced
// under the configured prefix.
func (m *minioStorage) Store(ctx context.Context, r io.Reader, hints StoreHints) (StoreResult, error) {
	name := uuid.New().String() + filepath.Ext(hints.OriginalName)
	key := NormalizeID(name, m.namespace)

	putOpts := minio.PutObjectOptions{
		ContentType: hints.ContentType,
		UserMetadata: map[string]string{
			"original-filename": hints.OriginalName,
			"resource-class":    string(hints.Class),
		},
	}
	if _, err := m.client.PutObject(ctx, m.bucket, key, r, hints.Size, putOpts); err != nil {
		return StoreResult{}, err
	}
	return StoreResult{
		StorageID:  key,
		StorageURL: m.BuildAccessURL(key, hints.Class, ""),
	}, nil
}

// BuildAccessURL derives the object's access URL from static configuration.
// No network I/O happens here.
func (m *minioStorage) BuildAccessURL(storageID string, class ResourceClass, forceDownloadName string) string {
	return accessURL(m.endpoint.Host, m.bucket, storageID, forceDownloadName)
}

// Remove deletes an object by its canonical handle. The resource class is part
// of the gateway contract (backends like Cloudinary route deletes by class);
// S3-style backends address objects by key alone.
func (m *minioStorage) Remove(ctx context.Context, storageID string, class ResourceClass) (RemoveOutcome, error) {
	err := m.client.RemoveObject(ctx, m.bucket, storageID, minio.RemoveObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return NotFound, nil
		}
		return Removed, err
	}
	return Removed, nil
}

// accessURL builds the canonical object URL. The scheme is always https: a
// plaintext endpoint is upgraded before the URL is returned or persisted.
func accessURL(host, bucket, storageID, forceDownloadName string) string {
	u := url.URL{
		Scheme: "https",
		Host:   host,
		Path:   "/" + bucket + "/" + storageID,
	}
	if forceDownloadName != "" {
		q := url.Values{}
		q.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", forceDownloadName))
		u.RawQuery = q.Encode()
	}
	return u.String()
}
