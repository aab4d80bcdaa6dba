package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvAgentName         = "REVIEWLENS_AGENT_NAME"
	EnvAgentProviderName = "REVIEWLENS_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "REVIEWLENS_AGENT_BASE_URL"
	EnvAgentToken        = "REVIEWLENS_AGENT_TOKEN"
	EnvAgentDeployment   = "REVIEWLENS_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "REVIEWLENS_AGENT_API_VERSION"
	EnvAgentAuthType     = "REVIEWLENS_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "REVIEWLENS_AGENT_MODEL_NAME"
)

// AgentConfig holds the generative backend settings for the analysis
// workflow.
type AgentConfig struct {
	Name     string            `toml:"name"`
	Provider string            `toml:"provider"`
	BaseURL  string            `toml:"base_url"`
	Model    string            `toml:"model"`
	Options  map[string]string `toml:"options"`
}

// ToAgentConfig converts to a go-agents AgentConfig, layered over the
// library defaults.
func (c *AgentConfig) ToAgentConfig() *gaconfig.AgentConfig {
	options := make(map[string]any, len(c.Options))
	for k, v := range c.Options {
		options[k] = v
	}

	cfg := gaconfig.AgentConfig{
		Name: c.Name,
		Provider: &gaconfig.ProviderConfig{
			Name:    c.Provider,
			BaseURL: c.BaseURL,
			Options: options,
		},
		Model: &gaconfig.ModelConfig{
			Name: c.Model,
		},
	}

	defaults := gaconfig.DefaultAgentConfig()
	defaults.Merge(&cfg)
	return &defaults
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AgentConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AgentConfig) Merge(overlay *AgentConfig) {
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	for k, v := range overlay.Options {
		if c.Options == nil {
			c.Options = make(map[string]string)
		}
		c.Options[k] = v
	}
}

func (c *AgentConfig) loadDefaults() {
	if c.Name == "" {
		c.Name = "reviewlens"
	}
	if c.Provider == "" {
		c.Provider = "ollama"
	}
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:11434"
	}
	if c.Model == "" {
		c.Model = "llama3.2"
	}
	if c.Options == nil {
		c.Options = make(map[string]string)
	}
}

func (c *AgentConfig) loadEnv() {
	if v := os.Getenv(EnvAgentName); v != "" {
		c.Name = v
	}
	if v := os.Getenv(EnvAgentProviderName); v != "" {
		c.Provider = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModelName); v != "" {
		c.Model = v
	}

	setOption := func(envVar, key string) {
		if v := os.Getenv(envVar); v != "" {
			c.Options[key] = v
		}
	}

	setOption(EnvAgentToken, "token")
	setOption(EnvAgentDeployment, "deployment")
	setOption(EnvAgentAPIVersion, "api_version")
	setOption(EnvAgentAuthType, "auth_type")
}

func (c *AgentConfig) validate() error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider == "" {
		return fmt.Errorf("provider required")
	}
	if c.Model == "" {
		return fmt.Errorf("model required")
	}
	return nil
}
