package catalogsrv

import "errors"

// ErrProductNotFound is returned when the catalog has no such product.
var ErrProductNotFound = errors.New("catalogsrv: product not found")
