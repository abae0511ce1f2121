package catalog

import (
	"fmt"
	"sync"
	"time"

	"image-insights-srv/config"
	"image-insights-srv/pkg/catalogsrv"
	pkghttp "image-insights-srv/pkg/http"
)

var (
	instance catalogsrv.ICatalog
	once     sync.Once
	mu       sync.RWMutex
)

// Connect initializes the Catalog Service client using singleton pattern.
func Connect(cfg config.CatalogConfig) catalogsrv.ICatalog {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	once.Do(func() {
		timeout := time.Duration(cfg.Timeout) * time.Second
		if timeout <= 0 {
			timeout = catalogsrv.DefaultTimeout
		}
		instance = catalogsrv.New(catalogsrv.CatalogConfig{
			BaseURL: cfg.URL,
			HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{
				Timeout:   timeout,
				Retries:   catalogsrv.DefaultRetries,
				RetryWait: catalogsrv.DefaultRetryWait,
			}),
		})
	})

	return instance
}

// GetClient returns the singleton Catalog Service client instance.
func GetClient() catalogsrv.ICatalog {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("Catalog client not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck checks if Catalog Service client is initialized
func HealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("Catalog client not initialized")
	}
	return nil
}
