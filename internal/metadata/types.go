package metadata

import "image-insights-srv/internal/model"

const (
	LicenseProprietary = "proprietary"
	LicenseCC0         = "cc0"
	LicenseCCBY        = "cc-by"
	LicenseCCBYSA      = "cc-by-sa"
	LicenseCCBYNC      = "cc-by-nc"
	LicenseCommercial  = "commercial"
)

// KnownLicenses is the closed license enum.
var KnownLicenses = map[string]bool{
	LicenseProprietary: true,
	LicenseCC0:         true,
	LicenseCCBY:        true,
	LicenseCCBYSA:      true,
	LicenseCCBYNC:      true,
	LicenseCommercial:  true,
}

type SynthesizeInput struct {
	Descriptor model.ImageDescriptor
	Product    model.ProductContext
}

type SynthesizeOutput struct {
	Filenames FilenameSet
	Metadata  ImageMetadata
	Copyright CopyrightRecord
}

// FilenameSet holds the derived filename variants. Recomputed on demand,
// never authoritative over the catalog.
type FilenameSet struct {
	IDBased     string
	NameBased   string
	Descriptive string
	CDNPath     string
	AspectRatio string
}

type ImageMetadata struct {
	Dimensions DimensionInfo
	Content    ContentInfo
	Creator    string
	Copyright  string
	Dates      DateInfo
	SEO        SEOInfo
	Technical  TechnicalInfo
	Quality    QualityEstimate
	Usage      UsageInfo
}

type DimensionInfo struct {
	Width       int
	Height      int
	AspectRatio string
	Orientation string
	Megapixels  float64
}

type ContentInfo struct {
	Keywords []string
	Tags     []string
	Category string
}

type DateInfo struct {
	Created   int64
	Modified  int64
	Published int64
}

type SEOInfo struct {
	Title         string
	Description   string
	KeywordString string
}

type TechnicalInfo struct {
	MIMEType           string
	ColorSpace         string
	BitDepth           int
	EstimatedSizeBytes int64
}

// QualityEstimate fields are clamped to [0,1].
type QualityEstimate struct {
	Sharpness     float64
	Contrast      float64
	ColorAccuracy float64
}

type UsageInfo struct {
	CDNVariants map[string]string
	AltText     string
	Caption     string
}

type CopyrightRecord struct {
	Statement       string
	AttributionText string
	LicenseType     string
	Restrictions    []string
	Permissions     []string
	Usage           UsageRights
	Watermark       bool
	Citations       CitationForms
}

type UsageRights struct {
	CanUseCommercially bool
	CanModify          bool
	NeedsAttribution   bool
	CanRedistribute    bool
}

type CitationForms struct {
	MLA     string
	APA     string
	Chicago string
	HTML    string
}

// LicenseRule drives copyright synthesis for one license type.
type LicenseRule struct {
	Statement    string
	Restrictions []string
	Permissions  []string
	Usage        UsageRights
	Watermark    bool
}
