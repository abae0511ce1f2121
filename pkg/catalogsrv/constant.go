package catalogsrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the catalog service.
	DefaultTimeout = 10 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 3
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 1 * time.Second
)

// API path segments (full URLs built in catalogsrv.go).
const (
	PathProducts = "/api/v1/products"
)
