package minio

import (
	"io"
	"time"

	"image-insights-srv/config"

	"github.com/minio/minio-go/v7"
)

// implMinIO implements the MinIO interface.
type implMinIO struct {
	minioClient *minio.Client
	config      *config.MinIOConfig
	connected   bool
}

// UploadRequest describes an object upload.
type UploadRequest struct {
	BucketName  string
	ObjectName  string
	Reader      io.Reader
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// FileInfo describes a stored object.
type FileInfo struct {
	BucketName   string
	ObjectName   string
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
}

// PresignedURLRequest describes a presigned download URL request.
type PresignedURLRequest struct {
	BucketName string
	ObjectName string
	Expiry     time.Duration
}

// PresignedURLResponse carries the generated URL and its expiry.
type PresignedURLResponse struct {
	URL       string
	ExpiresAt time.Time
}
