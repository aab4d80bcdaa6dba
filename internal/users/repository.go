package users

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reviewlens/reviewlens/pkg/pagination"
	"github.com/reviewlens/reviewlens/pkg/query"
	"github.com/reviewlens/reviewlens/pkg/repository"
)

type repo struct {
	store      *repository.Store[User]
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a user directory repository implementing the System interface,
// pre-populated with the given seed users.
func New(logger *slog.Logger, pagination pagination.Config, seed []User) System {
	store := repository.NewStore[User]()
	for _, u := range seed {
		// Seed data is curated; collisions indicate a programming error.
		_ = store.Insert(u.ID, u)
	}

	return &repo{
		store:      store,
		logger:     logger.With("system", "users"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[User], error) {
	page.Normalize(r.pagination)

	var items []User
	for _, u := range r.store.All() {
		if !filters.Matches(u) {
			continue
		}
		if !query.MatchesSearch(page.Search, u.Name, u.Email) {
			continue
		}
		items = append(items, u)
	}

	query.Sort(items, page.Sort, compareUsers)

	total := len(items)
	data := query.Page(items, page.Offset(), page.PageSize)

	result := pagination.NewPageResult(data, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := r.store.Get(id)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &u, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*User, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(cmd.Email) == "" {
		return nil, ErrEmptyEmail
	}
	if _, err := ParseRole(string(cmd.Role)); err != nil {
		return nil, err
	}

	for _, u := range r.store.All() {
		if strings.EqualFold(u.Email, cmd.Email) {
			return nil, ErrDuplicate
		}
	}

	u := User{
		ID:        uuid.New(),
		Name:      cmd.Name,
		Email:     cmd.Email,
		Role:      cmd.Role,
		Status:    StatusActive,
		CreatedAt: time.Now(),
	}

	if err := r.store.Insert(u.ID, u); err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user created", "id", u.ID, "email", u.Email, "role", u.Role)
	return &u, nil
}

func (r *repo) Suspend(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := r.store.Update(id, func(u User) (User, error) {
		if u.Status == StatusSuspended {
			return u, ErrSuspended
		}
		u.Status = StatusSuspended
		return u, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user suspended", "id", u.ID)
	return &u, nil
}

func (r *repo) Reinstate(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := r.store.Update(id, func(u User) (User, error) {
		if u.Status != StatusSuspended {
			return u, ErrNotSuspended
		}
		u.Status = StatusActive
		return u, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user reinstated", "id", u.ID)
	return &u, nil
}

func compareUsers(field string, a, b User) int {
	switch field {
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "email":
		return strings.Compare(a.Email, b.Email)
	case "created_at":
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return 0
	}
}
