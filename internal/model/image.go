package model

// Known image codecs accepted by the engine.
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatWebP = "webp"
	FormatAVIF = "avif"
	FormatGIF  = "gif"
)

// KnownFormats is the closed set of accepted image formats.
var KnownFormats = map[string]bool{
	FormatJPEG: true,
	FormatPNG:  true,
	FormatWebP: true,
	FormatAVIF: true,
	FormatGIF:  true,
}

// ImageDescriptor describes a single product image as supplied by the catalog.
// Immutable once created; width and height must be positive.
type ImageDescriptor struct {
	ProductID string `json:"product_id"`
	View      string `json:"view"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
	URL       string `json:"url"`
	AltText   string `json:"alt_text"`
}

// ProductContext is the catalog-side context for metadata synthesis.
type ProductContext struct {
	ProductName string   `json:"product_name"`
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

// MimeType returns the MIME type for a known image format.
func MimeType(format string) string {
	switch format {
	case FormatJPEG:
		return "image/jpeg"
	case FormatPNG:
		return "image/png"
	case FormatWebP:
		return "image/webp"
	case FormatAVIF:
		return "image/avif"
	case FormatGIF:
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
