package minio

import (
	"context"
	"fmt"
	"time"

	"image-insights-srv/config"

	"github.com/minio/minio-go/v7"
)

func validateConfig(cfg *config.MinIOConfig) error {
	if cfg == nil {
		return fmt.Errorf("minio: config is required")
	}
	if cfg.Endpoint == "" {
		return fmt.Errorf("minio: endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return fmt.Errorf("minio: access key and secret key are required")
	}
	return nil
}

// Connect verifies connectivity and ensures the configured bucket exists.
func (m *implMinIO) Connect(ctx context.Context) error {
	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	if err := m.HealthCheck(connectCtx); err != nil {
		return err
	}
	if m.config.Bucket != "" {
		if err := m.EnsureBucket(ctx, m.config.Bucket); err != nil {
			return err
		}
	}
	m.connected = true
	return nil
}

// HealthCheck verifies the MinIO endpoint responds.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio: health check failed: %w", err)
	}
	return nil
}

// Close marks the client as disconnected. The underlying client is stateless.
func (m *implMinIO) Close() error {
	m.connected = false
	return nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return fmt.Errorf("minio: failed to create bucket %s: %w", bucketName, err)
	}
	return nil
}

// BucketExists reports whether the bucket exists.
func (m *implMinIO) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return false, fmt.Errorf("minio: failed to check bucket %s: %w", bucketName, err)
	}
	return exists, nil
}

// UploadFile uploads an object and returns its stored info.
func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	opts := minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: req.Metadata,
	}

	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return nil, fmt.Errorf("minio: failed to upload %s/%s: %w", req.BucketName, req.ObjectName, err)
	}

	return &FileInfo{
		BucketName:   info.Bucket,
		ObjectName:   info.Key,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
	}, nil
}

// GetFileInfo returns metadata of a stored object.
func (m *implMinIO) GetFileInfo(ctx context.Context, bucketName, objectName string) (*FileInfo, error) {
	stat, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to stat %s/%s: %w", bucketName, objectName, err)
	}

	return &FileInfo{
		BucketName:   bucketName,
		ObjectName:   objectName,
		Size:         stat.Size,
		ContentType:  stat.ContentType,
		ETag:         stat.ETag,
		LastModified: stat.LastModified,
	}, nil
}

// GetPresignedDownloadURL generates a time-limited download URL.
func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	expiry := req.Expiry
	if expiry <= 0 {
		expiry = DefaultPresignedExpiry
	}

	u, err := m.minioClient.PresignedGetObject(ctx, req.BucketName, req.ObjectName, expiry, nil)
	if err != nil {
		return nil, fmt.Errorf("minio: failed to presign %s/%s: %w", req.BucketName, req.ObjectName, err)
	}

	return &PresignedURLResponse{
		URL:       u.String(),
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

// DeleteFile removes an object.
func (m *implMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	if err := m.minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio: failed to delete %s/%s: %w", bucketName, objectName, err)
	}
	return nil
}
