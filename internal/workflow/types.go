package workflow

import (
	"encoding/json"
	"slices"
	"time"
)

// State bag keys for the analysis graph.
const (
	KeyRequest        = "analysis_request"
	KeyClassification = "classification_result"
	KeyExplanation    = "visual_explanation"
)

// Classification is the binary authenticity label assigned to a review.
type Classification string

// Valid classification labels.
const (
	ClassificationFake    Classification = "Fake"
	ClassificationGenuine Classification = "Genuine"
)

var classifications = []Classification{
	ClassificationFake,
	ClassificationGenuine,
}

// ParseClassification validates a string as a known classification label.
// Any other value is a contract violation from the generative service and
// returns ErrInvalidClassification.
func ParseClassification(s string) (Classification, error) {
	v := Classification(s)
	if !slices.Contains(classifications, v) {
		return "", ErrInvalidClassification
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known label.
func (c *Classification) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v, err := ParseClassification(raw)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// AnalysisRequest carries the validated review submission through the graph.
type AnalysisRequest struct {
	ReviewText  string `json:"reviewText"`
	ProductName string `json:"productName"`
	Platform    string `json:"platform"`
	Language    string `json:"language"`
}

// Explanation is the analyze stage's descriptive explanation sub-record.
// All three fields are free text at this stage; decomposition into arrays
// happens in the explain stage.
type Explanation struct {
	HighlightedKeywords string `json:"highlightedKeywords"`
	SummarySentences    string `json:"summarySentences"`
	ConfidenceBreakdown string `json:"confidenceBreakdown"`
}

// ClassificationResult is the schema-validated output of the analyze stage.
type ClassificationResult struct {
	TrustScore     float64        `json:"trustScore"`
	Classification Classification `json:"classification"`
	Explanation    Explanation    `json:"explanation"`
}

// ExplainInput is the explain stage's outbound contract: the review text
// plus the analyze stage's two key outputs.
type ExplainInput struct {
	ReviewText     string         `json:"reviewText"`
	TrustScore     float64        `json:"trustScore"`
	Classification Classification `json:"classification"`
}

// VisualExplanation is the schema-validated output of the explain stage.
// Both arrays are ordered for display.
type VisualExplanation struct {
	HighlightedKeywords []string `json:"highlightedKeywords"`
	SummarySentences    []string `json:"summarySentences"`
}

// Result is the merged output of a completed analysis workflow.
type Result struct {
	Request        AnalysisRequest      `json:"request"`
	Classification ClassificationResult `json:"classification"`
	Explanation    VisualExplanation    `json:"explanation"`
	CompletedAt    time.Time            `json:"completed_at"`
}
