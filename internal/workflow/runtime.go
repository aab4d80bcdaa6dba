package workflow

import (
	"log/slog"
	"time"

	"github.com/reviewlens/reviewlens/internal/prompts"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from Infrastructure
// and Domain systems.
type Runtime struct {
	Generator   Generator
	Prompts     prompts.System
	Logger      *slog.Logger
	CallTimeout time.Duration

	// ModelName and ProviderName identify the configured backend for
	// stamping onto analysis records.
	ModelName    string
	ProviderName string
}
