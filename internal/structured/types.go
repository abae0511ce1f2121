package structured

// Document kinds, mirroring the public structured-data vocabularies.
const (
	KindVisualObject       = "visual-object"
	KindCollection         = "collection"
	KindCopyright          = "copyright"
	KindQualityAssessment  = "quality-assessment"
	KindOptimizationReport = "optimization-report"
	KindFilenameConvention = "filename-convention"
	KindCommerce           = "commerce"
)

// KnownKinds is the closed set of emittable document kinds.
var KnownKinds = map[string]bool{
	KindVisualObject:       true,
	KindCollection:         true,
	KindCopyright:          true,
	KindQualityAssessment:  true,
	KindOptimizationReport: true,
	KindFilenameConvention: true,
	KindCommerce:           true,
}

type EmitInput struct {
	Kind    string
	Payload map[string]interface{}
}

// Document is a structured-data document ready for page-head injection.
// The emitter never inserts it itself; delivery to the injector runs over
// the message broker.
type Document struct {
	Kind      string
	Data      map[string]interface{}
	Published bool
}
