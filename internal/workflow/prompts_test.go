package workflow_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/reviewlens/reviewlens/internal/prompts"
	"github.com/reviewlens/reviewlens/internal/workflow"
	"github.com/reviewlens/reviewlens/pkg/pagination"
)

func newPromptSystem() prompts.System {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return prompts.New(logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func TestComposePromptAnalyze(t *testing.T) {
	ps := newPromptSystem()

	prompt, err := workflow.ComposePrompt(
		context.Background(),
		ps,
		prompts.StageAnalyze,
		testRequest(),
	)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	if !strings.Contains(prompt, "identifying fake product reviews") {
		t.Error("prompt missing analyze instructions")
	}
	if !strings.Contains(prompt, `"trustScore": 88`) {
		t.Error("prompt missing analyze output specification")
	}
	if !strings.Contains(prompt, "Analysis input:") {
		t.Error("prompt missing input section header")
	}
	if !strings.Contains(prompt, `"productName": "Quantum Laptop Pro"`) {
		t.Error("prompt missing serialized request")
	}
}

func TestComposePromptExplain(t *testing.T) {
	ps := newPromptSystem()

	input := workflow.ExplainInput{
		ReviewText:     "Sound quality is crisp and clear.",
		TrustScore:     92,
		Classification: workflow.ClassificationGenuine,
	}

	prompt, err := workflow.ComposePrompt(
		context.Background(),
		ps,
		prompts.StageExplain,
		input,
	)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	if !strings.Contains(prompt, "analyzing customer reviews") {
		t.Error("prompt missing explain instructions")
	}
	if !strings.Contains(prompt, `"highlightedKeywords"`) {
		t.Error("prompt missing explain output specification")
	}
	if !strings.Contains(prompt, `"trustScore": 92`) {
		t.Error("prompt missing serialized trust score")
	}
	if !strings.Contains(prompt, `"classification": "Genuine"`) {
		t.Error("prompt missing serialized classification")
	}
}

func TestComposePromptUsesActiveOverride(t *testing.T) {
	ps := newPromptSystem()
	ctx := context.Background()

	created, err := ps.Create(ctx, prompts.CreateCommand{
		Name:         "strict-analyze",
		Stage:        prompts.StageAnalyze,
		Instructions: "Score conservatively and favor the Fake label when uncertain.",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := ps.Activate(ctx, created.ID); err != nil {
		t.Fatalf("activate failed: %v", err)
	}

	prompt, err := workflow.ComposePrompt(ctx, ps, prompts.StageAnalyze, testRequest())
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	if !strings.Contains(prompt, "Score conservatively") {
		t.Error("prompt should use the active override instructions")
	}
	if strings.Contains(prompt, "identifying fake product reviews") {
		t.Error("prompt should not include the default instructions when overridden")
	}
	if !strings.Contains(prompt, `"trustScore": 88`) {
		t.Error("specification must remain immutable under overrides")
	}
}
