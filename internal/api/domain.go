package api

import (
	"github.com/reviewlens/reviewlens/internal/analyses"
	"github.com/reviewlens/reviewlens/internal/analytics"
	"github.com/reviewlens/reviewlens/internal/catalog"
	"github.com/reviewlens/reviewlens/internal/prompts"
	"github.com/reviewlens/reviewlens/internal/reviews"
	"github.com/reviewlens/reviewlens/internal/users"
	"github.com/reviewlens/reviewlens/internal/workflow"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Analyses  analyses.System
	Analytics analytics.System
	Catalog   catalog.System
	Prompts   prompts.System
	Reviews   reviews.System
	Users     users.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	promptsSystem := prompts.New(runtime.Logger, runtime.Pagination)
	reviewsSystem := reviews.New(runtime.Logger, runtime.Pagination)

	usersSystem := users.New(
		runtime.Logger,
		runtime.Pagination,
		users.SeedUsers(),
	)

	rt := &workflow.Runtime{
		Generator:    workflow.NewAgentGenerator(*runtime.Agent),
		Prompts:      promptsSystem,
		Logger:       runtime.Logger,
		CallTimeout:  runtime.CallTimeout,
		ModelName:    runtime.Agent.Model.Name,
		ProviderName: runtime.Agent.Provider.Name,
	}

	analysesSystem := analyses.New(
		rt,
		reviewsSystem,
		runtime.Logger,
		runtime.Pagination,
		runtime.MaxRequestSize,
		analyses.SeedAnalyses(rt.ModelName, rt.ProviderName),
	)

	analyticsSystem := analytics.New(
		analysesSystem,
		reviewsSystem,
		analytics.DefaultMetrics(),
		runtime.Logger,
	)

	catalogSystem := catalog.New(catalog.DefaultCatalog(), runtime.Logger)

	return &Domain{
		Analyses:  analysesSystem,
		Analytics: analyticsSystem,
		Catalog:   catalogSystem,
		Prompts:   promptsSystem,
		Reviews:   reviewsSystem,
		Users:     usersSystem,
	}
}
