package workflow

import (
	"context"
	"fmt"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// Execute runs the analysis workflow for a single validated request. It
// builds the state graph (analyze → explain), executes it, and extracts the
// merged Result from the final state. The two stages are strictly
// sequential: explain consumes the analyze stage's score and label, so any
// analyze failure terminates the workflow before explain runs.
func Execute(ctx context.Context, rt *Runtime, req AnalysisRequest) (*Result, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyRequest, req)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("review-analysis")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("analyze", AnalyzeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("explain", ExplainNode(rt)); err != nil {
		return nil, err
	}

	// analyze → explain (unconditional)
	if err := graph.AddEdge("analyze", "explain", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("analyze"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("explain"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*Result, error) {
	reqVal, ok := s.Get(KeyRequest)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyRequest)
	}

	req, ok := reqVal.(AnalysisRequest)
	if !ok {
		return nil, fmt.Errorf("%s is not AnalysisRequest", KeyRequest)
	}

	classVal, ok := s.Get(KeyClassification)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyClassification)
	}

	classification, ok := classVal.(ClassificationResult)
	if !ok {
		return nil, fmt.Errorf("%s is not ClassificationResult", KeyClassification)
	}

	explainVal, ok := s.Get(KeyExplanation)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyExplanation)
	}

	explanation, ok := explainVal.(VisualExplanation)
	if !ok {
		return nil, fmt.Errorf("%s is not VisualExplanation", KeyExplanation)
	}

	return &Result{
		Request:        req,
		Classification: classification,
		Explanation:    explanation,
		CompletedAt:    time.Now(),
	}, nil
}
