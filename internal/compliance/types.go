package compliance

import "image-insights-srv/internal/model"

// Compliance statuses, bucketed from the normalized score.
const (
	StatusExcellent        = "EXCELLENT"
	StatusGood             = "GOOD"
	StatusAcceptable       = "ACCEPTABLE"
	StatusNeedsImprovement = "NEEDS_IMPROVEMENT"
)

// Shipped platform spec keys.
const (
	PlatformGoogleLens = "google-lens"
	PlatformPinterest  = "pinterest"
)

// PlatformSpec is an injectable set of platform requirements. The shipped
// platforms are two instances of this shape, not hardwired branches.
type PlatformSpec struct {
	Key              string
	Name             string
	MinWidth         int
	MinHeight        int
	IdealWidth       int
	IdealHeight      int
	AcceptedFormats  []string
	PreferredFormats []string
	AltTextMin       int
	AltTextMax       int
	MaxFileSizeBytes int64
}

type ValidateInput struct {
	Descriptor model.ImageDescriptor
	Platform   string
}

type Report struct {
	Platform        string
	Status          string
	Score           float64
	Checks          Checks
	Recommendations []string
	Details         Details
}

// Checks records pass/fail per requirement at full criteria.
type Checks struct {
	Dimension bool
	AltText   bool
	Format    bool
	FileSize  bool
}

// Details carries the observed values behind each check for debugging.
type Details struct {
	ActualWidth        int
	ActualHeight       int
	RequiredMinWidth   int
	RequiredMinHeight  int
	IdealWidth         int
	IdealHeight        int
	AltTextLength      int
	AltTextBand        [2]int
	Format             string
	EstimatedSizeBytes int64
	MaxFileSizeBytes   int64
}
