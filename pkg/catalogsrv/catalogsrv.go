package catalogsrv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	pkghttp "image-insights-srv/pkg/http"
)

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	})
}

// GetProduct retrieves product details by ID.
func (c *catalogImpl) GetProduct(ctx context.Context, productID string) (*Product, error) {
	url := fmt.Sprintf("%s%s/%s", c.baseURL, PathProducts, productID)

	body, statusCode, err := c.httpClient.Get(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if statusCode == http.StatusNotFound {
		return nil, ErrProductNotFound
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	var product Product
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	return &product, nil
}
