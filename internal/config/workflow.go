package config

import (
	"fmt"
	"os"
	"time"
)

const EnvWorkflowCallTimeout = "REVIEWLENS_WORKFLOW_CALL_TIMEOUT"

// WorkflowConfig holds analysis workflow settings.
type WorkflowConfig struct {
	CallTimeout string `toml:"call_timeout"`
}

// CallTimeoutDuration returns CallTimeout as a time.Duration.
func (c *WorkflowConfig) CallTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.CallTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *WorkflowConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *WorkflowConfig) Merge(overlay *WorkflowConfig) {
	if overlay.CallTimeout != "" {
		c.CallTimeout = overlay.CallTimeout
	}
}

func (c *WorkflowConfig) loadDefaults() {
	if c.CallTimeout == "" {
		c.CallTimeout = "60s"
	}
}

func (c *WorkflowConfig) loadEnv() {
	if v := os.Getenv(EnvWorkflowCallTimeout); v != "" {
		c.CallTimeout = v
	}
}

func (c *WorkflowConfig) validate() error {
	if _, err := time.ParseDuration(c.CallTimeout); err != nil {
		return fmt.Errorf("invalid call_timeout: %w", err)
	}
	return nil
}
