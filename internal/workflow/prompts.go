package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reviewlens/reviewlens/internal/prompts"
)

// ComposePrompt builds a stage prompt by combining tunable instructions,
// the immutable output specification, and the serialized analysis input
// for that stage.
func ComposePrompt(
	ctx context.Context,
	ps prompts.System,
	stage prompts.Stage,
	input any,
) (string, error) {
	instructions, err := ps.Instructions(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := ps.Spec(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	inputJSON, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize analysis input: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)
	sb.WriteString("\n\nAnalysis input:\n\n")
	sb.Write(inputJSON)

	return sb.String(), nil
}
