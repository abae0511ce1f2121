package minio

import "time"

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 16
	idleConnTimeout     = 90 * time.Second

	// DefaultPresignedExpiry is used when a presign request carries no expiry.
	DefaultPresignedExpiry = 30 * time.Minute

	defaultConnectTimeout = 5 * time.Second
)
