package catalog

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/reviewlens/reviewlens/pkg/handlers"
	"github.com/reviewlens/reviewlens/pkg/routes"
)

// Handler provides HTTP endpoints for catalog operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "catalog"),
	}
}

// Routes returns the route group definition for catalog endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/catalog",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Catalog},
			{Method: "GET", Pattern: "/products", Handler: h.Products},
			{Method: "GET", Pattern: "/platforms", Handler: h.Platforms},
			{Method: "GET", Pattern: "/languages", Handler: h.Languages},
		},
	}
}

// Catalog returns all three option lists.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	c, err := h.sys.Catalog(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, c)
}

// Products returns the product options.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, h.sys.Products)
}

// Platforms returns the platform options.
func (h *Handler) Platforms(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, h.sys.Platforms)
}

// Languages returns the language options.
func (h *Handler) Languages(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, h.sys.Languages)
}

func (h *Handler) respondList(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context) ([]Option, error),
) {
	options, err := op(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, options)
}
