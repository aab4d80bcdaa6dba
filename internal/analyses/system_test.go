package analyses_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/reviewlens/reviewlens/internal/analyses"
	"github.com/reviewlens/reviewlens/internal/prompts"
	"github.com/reviewlens/reviewlens/internal/reviews"
	"github.com/reviewlens/reviewlens/internal/workflow"
	"github.com/reviewlens/reviewlens/pkg/pagination"
)

type stubGenerator struct {
	responses []string
	calls     int
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	i := g.calls % len(g.responses)
	g.calls++
	return g.responses[i], nil
}

const analyzeGenuine = `{
  "trustScore": 88,
  "classification": "Genuine",
  "explanation": {
    "highlightedKeywords": "amazing, incredible, perfectly",
    "summarySentences": "Specific feature praise suggests authenticity.",
    "confidenceBreakdown": "Feature detail carries most of the score."
  }
}`

const analyzeFake = `{
  "trustScore": 23,
  "classification": "Fake",
  "explanation": {
    "highlightedKeywords": "scam, nightmare",
    "summarySentences": "Scam vocabulary with no product detail.",
    "confidenceBreakdown": "Aggressive phrasing dominates the score."
  }
}`

const explainGenuine = `{
  "highlightedKeywords": ["amazing", "incredible"],
  "summarySentences": ["Specific praise indicates a real purchase."]
}`

const explainFake = `{
  "highlightedKeywords": ["scam", "nightmare"],
  "summarySentences": ["Common scam keywords appear throughout."]
}`

type fixture struct {
	system analyses.System
	queue  reviews.System
	gen    *stubGenerator
}

func newFixture(responses ...string) *fixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
	gen := &stubGenerator{responses: responses}

	queue := reviews.New(logger, cfg)

	rt := &workflow.Runtime{
		Generator:    gen,
		Prompts:      prompts.New(logger, cfg),
		Logger:       logger,
		ModelName:    "llama3.2",
		ProviderName: "ollama",
	}

	return &fixture{
		system: analyses.New(rt, queue, logger, cfg, 1024*1024, nil),
		queue:  queue,
		gen:    gen,
	}
}

func TestAnalyzeValidationFailureSkipsService(t *testing.T) {
	f := newFixture(analyzeGenuine, explainGenuine)

	cmd := validCommand()
	cmd.Review = "too short"

	_, err := f.system.Analyze(context.Background(), cmd)

	var ve *analyses.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if f.gen.calls != 0 {
		t.Errorf("generator calls = %d, want 0", f.gen.calls)
	}

	result, err := f.system.List(context.Background(), pagination.PageRequest{}, analyses.Filters{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("stored analyses = %d, want 0", result.Total)
	}
}

func TestAnalyzeStoresMergedRecord(t *testing.T) {
	f := newFixture(analyzeGenuine, explainGenuine)

	a, err := f.system.Analyze(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if a.TrustScore != 88 {
		t.Errorf("TrustScore = %v, want 88", a.TrustScore)
	}
	if a.Classification != workflow.ClassificationGenuine {
		t.Errorf("Classification = %q, want Genuine", a.Classification)
	}
	if a.ReviewText != validCommand().Review {
		t.Errorf("ReviewText = %q, want original review", a.ReviewText)
	}
	if a.Product != "Smartwatch Series X" || a.Platform != "Amazon" || a.Language != "English" {
		t.Errorf("metadata = %q/%q/%q, want original submission", a.Product, a.Platform, a.Language)
	}
	if len(a.HighlightedKeywords) != 2 || a.HighlightedKeywords[0] != "amazing" {
		t.Errorf("HighlightedKeywords = %v", a.HighlightedKeywords)
	}
	if len(a.SummarySentences) != 1 {
		t.Errorf("SummarySentences = %v", a.SummarySentences)
	}
	if a.ConfidenceBreakdown == "" {
		t.Error("ConfidenceBreakdown should carry through from the analyze stage")
	}
	if a.ModelName != "llama3.2" || a.ProviderName != "ollama" {
		t.Errorf("provenance = %q/%q, want llama3.2/ollama", a.ModelName, a.ProviderName)
	}
	if a.AnalyzedAt.IsZero() {
		t.Error("AnalyzedAt should be stamped")
	}

	found, err := f.system.Find(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.ID != a.ID {
		t.Errorf("Find returned %v, want %v", found.ID, a.ID)
	}
}

func TestAnalyzeRepeatSubmissionsAgree(t *testing.T) {
	f := newFixture(analyzeGenuine, explainGenuine)
	ctx := context.Background()

	first, err := f.system.Analyze(ctx, validCommand())
	if err != nil {
		t.Fatalf("first analyze failed: %v", err)
	}
	second, err := f.system.Analyze(ctx, validCommand())
	if err != nil {
		t.Fatalf("second analyze failed: %v", err)
	}

	if first.ID == second.ID {
		t.Error("each analysis should get its own id")
	}

	// Everything derived from the submission and the service responses must
	// agree; only id and timestamp may differ.
	if first.TrustScore != second.TrustScore ||
		first.Classification != second.Classification ||
		first.ConfidenceBreakdown != second.ConfidenceBreakdown ||
		first.ReviewText != second.ReviewText ||
		first.Product != second.Product {
		t.Errorf("records disagree:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAnalyzeFlagsFakeClassification(t *testing.T) {
	f := newFixture(analyzeFake, explainFake)
	ctx := context.Background()

	cmd := validCommand()
	cmd.Review = "DO NOT BUY! This is a total scam. Customer service was a nightmare."

	a, err := f.system.Analyze(ctx, cmd)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if a.Classification != workflow.ClassificationFake {
		t.Fatalf("Classification = %q, want Fake", a.Classification)
	}

	status := reviews.StatusPending
	flagged, err := f.queue.List(ctx, pagination.PageRequest{}, reviews.Filters{Status: &status})
	if err != nil {
		t.Fatalf("queue list failed: %v", err)
	}
	if flagged.Total != 1 {
		t.Fatalf("pending reviews = %d, want 1", flagged.Total)
	}

	rev := flagged.Data[0]
	if rev.AnalysisID != a.ID {
		t.Errorf("AnalysisID = %v, want %v", rev.AnalysisID, a.ID)
	}
	if rev.TrustScore != 23 {
		t.Errorf("TrustScore = %v, want 23", rev.TrustScore)
	}
	if rev.ReviewText != cmd.Review {
		t.Errorf("ReviewText = %q, want submitted review", rev.ReviewText)
	}
}

func TestAnalyzeGenuineNotFlagged(t *testing.T) {
	f := newFixture(analyzeGenuine, explainGenuine)
	ctx := context.Background()

	if _, err := f.system.Analyze(ctx, validCommand()); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	flagged, err := f.queue.List(ctx, pagination.PageRequest{}, reviews.Filters{})
	if err != nil {
		t.Fatalf("queue list failed: %v", err)
	}
	if flagged.Total != 0 {
		t.Errorf("flagged reviews = %d, want 0", flagged.Total)
	}
}

func TestDeleteMissingAnalysis(t *testing.T) {
	f := newFixture(analyzeGenuine, explainGenuine)

	a, err := f.system.Analyze(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if err := f.system.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := f.system.Delete(context.Background(), a.ID); !errors.Is(err, analyses.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestListFiltersByClassification(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
	queue := reviews.New(logger, cfg)
	gen := &stubGenerator{responses: []string{analyzeGenuine, explainGenuine}}

	rt := &workflow.Runtime{
		Generator:    gen,
		Prompts:      prompts.New(logger, cfg),
		Logger:       logger,
		ModelName:    "llama3.2",
		ProviderName: "ollama",
	}

	seed := analyses.SeedAnalyses("llama3.2", "ollama")
	system := analyses.New(rt, queue, logger, cfg, 1024*1024, seed)

	fake := workflow.ClassificationFake
	result, err := system.List(
		context.Background(),
		pagination.PageRequest{},
		analyses.Filters{Classification: &fake},
	)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if result.Total != 1 {
		t.Fatalf("fake analyses = %d, want 1", result.Total)
	}
	if result.Data[0].Product != "Quantum Laptop Pro" {
		t.Errorf("Product = %q, want Quantum Laptop Pro", result.Data[0].Product)
	}
}
