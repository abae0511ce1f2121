package catalogsrv

import pkghttp "image-insights-srv/pkg/http"

// CatalogConfig holds configuration for the catalog service client.
type CatalogConfig struct {
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// Product represents a product as served by the catalog collaborator.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Brand       string   `json:"brand"`
	Creator     string   `json:"creator"`
	LicenseType string   `json:"license_type"`
	PriceCents  int64    `json:"price_cents"`
	Currency    string   `json:"currency"`
	InStock     bool     `json:"in_stock"`
}

// catalogImpl implements ICatalog.
type catalogImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}
