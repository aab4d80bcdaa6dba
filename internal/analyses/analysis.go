// Package analyses implements the core review analysis domain for
// reviewlens: request validation, workflow orchestration, and the merged
// analysis records the dashboard displays.
package analyses

import (
	"time"

	"github.com/google/uuid"

	"github.com/reviewlens/reviewlens/internal/workflow"
)

// Analysis is a completed review analysis: the submitted review merged
// with both workflow stage outputs and backend provenance.
type Analysis struct {
	ID                  uuid.UUID               `json:"id"`
	ReviewText          string                  `json:"review_text"`
	Product             string                  `json:"product"`
	Platform            string                  `json:"platform"`
	Language            string                  `json:"language"`
	TrustScore          float64                 `json:"trust_score"`
	Classification      workflow.Classification `json:"classification"`
	HighlightedKeywords []string                `json:"highlighted_keywords"`
	SummarySentences    []string                `json:"summary_sentences"`
	ConfidenceBreakdown string                  `json:"confidence_breakdown"`
	AnalyzedAt          time.Time               `json:"analyzed_at"`
	ModelName           string                  `json:"model_name"`
	ProviderName        string                  `json:"provider_name"`
}

// AnalyzeCommand carries a review submission. Field names match the
// dashboard's analysis form.
type AnalyzeCommand struct {
	Review   string `json:"review"`
	Product  string `json:"product"`
	Platform string `json:"platform"`
	Language string `json:"language"`
}

// Filters narrows analysis listings.
type Filters struct {
	Classification *workflow.Classification `json:"classification,omitempty"`
	Platform       *string                  `json:"platform,omitempty"`
	Language       *string                  `json:"language,omitempty"`
}

// Matches reports whether an analysis satisfies every set filter.
func (f Filters) Matches(a Analysis) bool {
	if f.Classification != nil && a.Classification != *f.Classification {
		return false
	}
	if f.Platform != nil && a.Platform != *f.Platform {
		return false
	}
	if f.Language != nil && a.Language != *f.Language {
		return false
	}
	return true
}

// merge assembles an Analysis record from a completed workflow result.
func merge(result *workflow.Result, modelName, providerName string) Analysis {
	return Analysis{
		ID:                  uuid.New(),
		ReviewText:          result.Request.ReviewText,
		Product:             result.Request.ProductName,
		Platform:            result.Request.Platform,
		Language:            result.Request.Language,
		TrustScore:          result.Classification.TrustScore,
		Classification:      result.Classification.Classification,
		HighlightedKeywords: result.Explanation.HighlightedKeywords,
		SummarySentences:    result.Explanation.SummarySentences,
		ConfidenceBreakdown: result.Classification.Explanation.ConfidenceBreakdown,
		AnalyzedAt:          result.CompletedAt,
		ModelName:           modelName,
		ProviderName:        providerName,
	}
}
