package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/reviewlens/reviewlens/pkg/pagination"
)

// System defines the public contract for user directory operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[User], error)

	Find(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, cmd CreateCommand) (*User, error)
	Suspend(ctx context.Context, id uuid.UUID) (*User, error)
	Reinstate(ctx context.Context, id uuid.UUID) (*User, error)
}
