package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/reviewlens/reviewlens/internal/prompts"
	"github.com/reviewlens/reviewlens/pkg/formatting"
)

// ExplainNode returns a state node that submits the review text plus the
// analyze stage's score and label to the generative service and stores the
// schema-validated visual explanation (keyword and sentence arrays). It only
// runs after the analyze node has succeeded.
func ExplainNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, err := extractRequest(s)
		if err != nil {
			return s, fmt.Errorf("explain: %w", err)
		}

		result, err := extractClassification(s)
		if err != nil {
			return s, fmt.Errorf("explain: %w", err)
		}

		explanation, err := explainScore(ctx, rt, req, result)
		if err != nil {
			return s, fmt.Errorf("explain: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "explain node complete",
			"keywords", len(explanation.HighlightedKeywords),
			"sentences", len(explanation.SummarySentences),
		)

		s = s.Set(KeyExplanation, *explanation)
		return s, nil
	})
}

func explainScore(
	ctx context.Context,
	rt *Runtime,
	req *AnalysisRequest,
	result *ClassificationResult,
) (*VisualExplanation, error) {
	input := ExplainInput{
		ReviewText:     req.ReviewText,
		TrustScore:     result.TrustScore,
		Classification: result.Classification,
	}

	prompt, err := ComposePrompt(ctx, rt.Prompts, prompts.StageExplain, input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExplainFailed, err)
	}

	content, err := generate(ctx, rt, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExplainFailed, err)
	}

	parsed, err := formatting.Parse[VisualExplanation](content)
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrExplainFailed, err)
	}

	if parsed.HighlightedKeywords == nil && parsed.SummarySentences == nil {
		return nil, fmt.Errorf("%w: %w", ErrExplainFailed, ErrEmptyResult)
	}

	return &parsed, nil
}

func extractClassification(s state.State) (*ClassificationResult, error) {
	val, ok := s.Get(KeyClassification)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyClassification)
	}

	result, ok := val.(ClassificationResult)
	if !ok {
		return nil, fmt.Errorf("%s is not ClassificationResult", KeyClassification)
	}

	return &result, nil
}
