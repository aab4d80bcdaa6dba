package api

import (
	"net/http"

	"github.com/reviewlens/reviewlens/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(mux, domain.Analyses.Handler().Routes())
	routes.Register(mux, domain.Analytics.Handler().Routes())
	routes.Register(mux, domain.Catalog.Handler().Routes())
	routes.Register(mux, domain.Prompts.Handler().Routes())
	routes.Register(mux, domain.Reviews.Handler().Routes())
	routes.Register(mux, domain.Users.Handler().Routes())
}
