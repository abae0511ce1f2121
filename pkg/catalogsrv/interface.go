package catalogsrv

import "context"

// ICatalog defines the interface for the product catalog API client.
// Implementations are safe for concurrent use.
type ICatalog interface {
	GetProduct(ctx context.Context, productID string) (*Product, error)
}

// New creates a new catalog service client. Returns the interface.
func New(cfg CatalogConfig) ICatalog {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &catalogImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}
