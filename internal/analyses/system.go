package analyses

import (
	"context"

	"github.com/google/uuid"

	"github.com/reviewlens/reviewlens/pkg/pagination"
)

// System defines the public contract for analysis operations.
type System interface {
	Handler() *Handler

	Analyze(ctx context.Context, cmd AnalyzeCommand) (*Analysis, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Analysis], error)

	Find(ctx context.Context, id uuid.UUID) (*Analysis, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// All returns every stored analysis in insertion order. Analytics
	// aggregations consume this rather than paging.
	All(ctx context.Context) ([]Analysis, error)
}
