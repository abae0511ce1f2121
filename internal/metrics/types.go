package metrics

// Performance grades.
const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
	GradeD = "D"
	GradeF = "F"
)

// PerformanceSample is a raw measurement supplied by the runtime
// performance collaborator. All values are untrusted numeric inputs.
type PerformanceSample struct {
	ImageID string

	// Core Web Vitals
	LCPMs float64
	CLS   float64
	INPMs float64

	// Image-specific timings
	LoadTimeMs   int64
	RenderTimeMs int64
	DecodeTimeMs int64

	// Sizes
	TransferSizeBytes int64
	Width             int
	Height            int
	Format            string
}

// PerformanceMetrics is derived and non-persistent; recomputable from the
// sample that produced it.
type PerformanceMetrics struct {
	ImageID       string
	CoreWebVitals CoreWebVitals
	Timings       Timings
	Compression   Compression
	QualityScore  float64
	Grade         string
}

type CoreWebVitals struct {
	LCP VitalsEntry
	CLS VitalsEntry
	INP VitalsEntry
}

// VitalsEntry compares an observed vital against its baseline.
// Improvement is a percentage floored at 0.
type VitalsEntry struct {
	Observed    float64
	Baseline    float64
	Improvement float64
}

type Timings struct {
	LoadTimeMs   int64
	RenderTimeMs int64
	DecodeTimeMs int64
}

type Compression struct {
	OriginalEstimateBytes int64
	TransferSizeBytes     int64
	Ratio                 float64
}

// SearchMetrics carries search-console style numbers plus the
// metadata-quality sub-scores, all in [0,100].
type SearchMetrics struct {
	ImageID string

	Impressions int64
	Clicks      int64
	AvgRank     float64

	MetadataQuality       float64
	TechnicalOptimization float64
	SchemaPresence        float64
	ContentRelevance      float64
}

type SEOImpact struct {
	ImageID string

	Score     float64
	SubScores SubScores

	CurrentCTR   float64
	ProjectedCTR float64

	// EstimatedTrafficIncrease is (deltaCTR x impressions) / currentClicks,
	// defined as 0 when clicks are 0.
	EstimatedTrafficIncrease float64
}

type SubScores struct {
	MetadataQuality       float64
	TechnicalOptimization float64
	SchemaPresence        float64
	ContentRelevance      float64
}
