package http

import (
	"context"
	"net/http"
	"time"
)

// IClient is a minimal retrying HTTP client used by internal service clients.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, url string, body []byte, headers map[string]string) ([]byte, int, error)
}

// ClientConfig configures the retrying client.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

type clientImpl struct {
	client    *http.Client
	retries   int
	retryWait time.Duration
}
