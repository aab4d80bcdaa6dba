// Package infrastructure provides core service initialization for application
// startup. It assembles the common dependencies (lifecycle coordination and
// logging) that domain systems require.
package infrastructure

import (
	"log/slog"
	"os"

	"github.com/reviewlens/reviewlens/internal/config"
	"github.com/reviewlens/reviewlens/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
}

// New creates an Infrastructure from the application configuration.
func New(cfg *config.Config) (*Infrastructure, error) {
	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}, nil
}
