package catalog

import (
	"context"
	"log/slog"
)

type repo struct {
	catalog Catalog
	logger  *slog.Logger
}

// New creates a catalog repository over the given option lists.
func New(catalog Catalog, logger *slog.Logger) System {
	return &repo{
		catalog: catalog,
		logger:  logger.With("system", "catalog"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Catalog(ctx context.Context) (*Catalog, error) {
	c := r.catalog
	return &c, nil
}

func (r *repo) Products(ctx context.Context) ([]Option, error) {
	return r.catalog.Products, nil
}

func (r *repo) Platforms(ctx context.Context) ([]Option, error) {
	return r.catalog.Platforms, nil
}

func (r *repo) Languages(ctx context.Context) ([]Option, error) {
	return r.catalog.Languages, nil
}
