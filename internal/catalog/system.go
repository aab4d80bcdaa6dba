package catalog

import "context"

// System defines the public contract for catalog operations.
type System interface {
	Handler() *Handler

	Catalog(ctx context.Context) (*Catalog, error)
	Products(ctx context.Context) ([]Option, error)
	Platforms(ctx context.Context) ([]Option, error)
	Languages(ctx context.Context) ([]Option, error)
}
