package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/reviewlens/reviewlens/internal/prompts"
	"github.com/reviewlens/reviewlens/pkg/formatting"
)

// analyzeResponse mirrors the analyze stage's declared output schema.
// Classification is decoded as a raw string so label validation produces
// a named contract error instead of a generic parse failure.
type analyzeResponse struct {
	TrustScore     float64     `json:"trustScore"`
	Classification string      `json:"classification"`
	Explanation    Explanation `json:"explanation"`
}

// AnalyzeNode returns a state node that submits the review and its metadata
// to the generative service and stores the schema-validated classification
// result. Any label other than Fake or Genuine fails the node; the explain
// node never runs after a failure here.
func AnalyzeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, err := extractRequest(s)
		if err != nil {
			return s, fmt.Errorf("analyze: %w", err)
		}

		result, err := analyzeReview(ctx, rt, req)
		if err != nil {
			return s, fmt.Errorf("analyze: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "analyze node complete",
			"classification", result.Classification,
			"trust_score", result.TrustScore,
		)

		s = s.Set(KeyClassification, *result)
		return s, nil
	})
}

func analyzeReview(ctx context.Context, rt *Runtime, req *AnalysisRequest) (*ClassificationResult, error) {
	prompt, err := ComposePrompt(ctx, rt.Prompts, prompts.StageAnalyze, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalyzeFailed, err)
	}

	content, err := generate(ctx, rt, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalyzeFailed, err)
	}

	parsed, err := formatting.Parse[analyzeResponse](content)
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrAnalyzeFailed, err)
	}

	label, err := ParseClassification(parsed.Classification)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: got %q", ErrAnalyzeFailed, err, parsed.Classification)
	}

	return &ClassificationResult{
		TrustScore:     parsed.TrustScore,
		Classification: label,
		Explanation:    parsed.Explanation,
	}, nil
}

func extractRequest(s state.State) (*AnalysisRequest, error) {
	val, ok := s.Get(KeyRequest)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyRequest)
	}

	req, ok := val.(AnalysisRequest)
	if !ok {
		return nil, fmt.Errorf("%s is not AnalysisRequest", KeyRequest)
	}

	return &req, nil
}
