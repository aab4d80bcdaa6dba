package analytics

import (
	"log/slog"
	"net/http"

	"github.com/reviewlens/reviewlens/pkg/handlers"
	"github.com/reviewlens/reviewlens/pkg/routes"
)

// Handler provides HTTP endpoints for analytics operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "analytics"),
	}
}

// Routes returns the route group definition for analytics endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analytics",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Report},
			{Method: "GET", Pattern: "/overview", Handler: h.Overview},
			{Method: "GET", Pattern: "/metrics", Handler: h.Metrics},
		},
	}
}

// Report returns the full dashboard report.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.sys.Report(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// Overview returns the summary counters alone.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.sys.Overview(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, overview)
}

// Metrics returns the static model evaluation table.
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.sys.Metrics(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, metrics)
}
