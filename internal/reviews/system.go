package reviews

import (
	"context"

	"github.com/google/uuid"

	"github.com/reviewlens/reviewlens/pkg/pagination"
)

// System defines the public contract for moderation queue operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Review], error)

	Find(ctx context.Context, id uuid.UUID) (*Review, error)
	Flag(ctx context.Context, cmd FlagCommand) (*Review, error)
	Approve(ctx context.Context, id uuid.UUID, cmd ModerateCommand) (*Review, error)
	Remove(ctx context.Context, id uuid.UUID, cmd ModerateCommand) (*Review, error)
}
