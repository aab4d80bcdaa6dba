package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Generator abstracts the generative text service behind a single call so
// the pipeline never binds to a vendor SDK and tests can substitute
// deterministic stubs.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type agentGenerator struct {
	cfg gaconfig.AgentConfig
}

// NewAgentGenerator creates a Generator backed by a go-agents Chat agent.
func NewAgentGenerator(cfg gaconfig.AgentConfig) Generator {
	return &agentGenerator{cfg: cfg}
}

func (g *agentGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	a, err := agent.New(&g.cfg)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("chat call: %w", err)
	}

	return resp.Content(), nil
}

// generate performs a single timed call against the runtime's generator and
// rejects empty payloads. Exactly one outbound call per invocation; failures
// are never retried.
func generate(ctx context.Context, rt *Runtime, prompt string) (string, error) {
	if rt.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rt.CallTimeout)
		defer cancel()
	}

	content, err := rt.Generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" || trimmed == "null" {
		return "", ErrEmptyResult
	}

	return content, nil
}
