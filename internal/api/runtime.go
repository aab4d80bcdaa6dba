package api

import (
	"time"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/reviewlens/reviewlens/internal/config"
	"github.com/reviewlens/reviewlens/internal/infrastructure"
	"github.com/reviewlens/reviewlens/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Agent          *gaconfig.AgentConfig
	Pagination     pagination.Config
	CallTimeout    time.Duration
	MaxRequestSize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
		},
		Agent:          cfg.Agent.ToAgentConfig(),
		Pagination:     cfg.API.Pagination,
		CallTimeout:    cfg.Workflow.CallTimeoutDuration(),
		MaxRequestSize: cfg.API.MaxRequestSizeBytes(),
	}
}
