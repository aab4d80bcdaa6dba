package prompts

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/reviewlens/reviewlens/pkg/pagination"
	"github.com/reviewlens/reviewlens/pkg/query"
	"github.com/reviewlens/reviewlens/pkg/repository"
)

type repo struct {
	store      *repository.Store[Prompt]
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a prompt repository implementing the System interface.
// Overrides are held in memory for the process lifetime.
func New(logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		store:      repository.NewStore[Prompt](),
		logger:     logger.With("system", "prompts"),
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
) (*pagination.PageResult[Prompt], error) {
	page.Normalize(r.pagination)

	var items []Prompt
	for _, p := range r.store.All() {
		if !filters.Matches(p) {
			continue
		}
		if !query.MatchesSearch(page.Search, p.Name, p.Instructions) {
			continue
		}
		items = append(items, p)
	}

	query.Sort(items, page.Sort, comparePrompts)

	total := len(items)
	data := query.Page(items, page.Offset(), page.PageSize)

	result := pagination.NewPageResult(data, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Prompt, error) {
	p, err := r.store.Get(id)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Prompt, error) {
	if _, err := ParseStage(string(cmd.Stage)); err != nil {
		return nil, err
	}
	if r.nameTaken(cmd.Name, uuid.Nil) {
		return nil, ErrDuplicate
	}

	p := Prompt{
		ID:           uuid.New(),
		Name:         cmd.Name,
		Stage:        cmd.Stage,
		Instructions: cmd.Instructions,
		Description:  cmd.Description,
	}

	if err := r.store.Insert(p.ID, p); err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("prompt created", "id", p.ID, "name", p.Name, "stage", p.Stage)
	return &p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Prompt, error) {
	if _, err := ParseStage(string(cmd.Stage)); err != nil {
		return nil, err
	}
	if r.nameTaken(cmd.Name, id) {
		return nil, ErrDuplicate
	}

	p, err := r.store.Update(id, func(p Prompt) (Prompt, error) {
		p.Name = cmd.Name
		p.Stage = cmd.Stage
		p.Instructions = cmd.Instructions
		p.Description = cmd.Description
		return p, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("prompt updated", "id", p.ID, "name", p.Name)
	return &p, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.store.Delete(id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("prompt deleted", "id", id)
	return nil
}

func (r *repo) Activate(ctx context.Context, id uuid.UUID) (*Prompt, error) {
	target, err := r.store.Get(id)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	// Only one override per stage may be active.
	for _, other := range r.store.All() {
		if other.ID != id && other.Stage == target.Stage && other.Active {
			r.store.Update(other.ID, func(p Prompt) (Prompt, error) {
				p.Active = false
				return p, nil
			})
		}
	}

	p, err := r.store.Update(id, func(p Prompt) (Prompt, error) {
		p.Active = true
		return p, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("prompt activated", "id", p.ID, "stage", p.Stage)
	return &p, nil
}

func (r *repo) Deactivate(ctx context.Context, id uuid.UUID) (*Prompt, error) {
	p, err := r.store.Update(id, func(p Prompt) (Prompt, error) {
		p.Active = false
		return p, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("prompt deactivated", "id", p.ID, "stage", p.Stage)
	return &p, nil
}

func (r *repo) Instructions(ctx context.Context, stage Stage) (string, error) {
	if _, err := ParseStage(string(stage)); err != nil {
		return "", err
	}

	for _, p := range r.store.All() {
		if p.Stage == stage && p.Active {
			return p.Instructions, nil
		}
	}

	return Instructions(stage)
}

func (r *repo) Spec(ctx context.Context, stage Stage) (string, error) {
	return Spec(stage)
}

func (r *repo) nameTaken(name string, exclude uuid.UUID) bool {
	for _, p := range r.store.All() {
		if p.ID != exclude && strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

func comparePrompts(field string, a, b Prompt) int {
	switch field {
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "stage":
		return strings.Compare(string(a.Stage), string(b.Stage))
	default:
		return 0
	}
}
