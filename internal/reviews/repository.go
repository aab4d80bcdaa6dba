package reviews

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
	store      *repository.Store[Review]
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a moderation queue repository implementing the System interface.
func New(logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		store:      repository.NewStore[Review](),
		logger:     logger.With("system", "reviews"),
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
) (*pagination.PageResult[Review], error) {
	page.Normalize(r.pagination)

	var items []Review
	for _, rev := range r.store.All() {
		if !filters.Matches(rev) {
			continue
		}
		if !query.MatchesSearch(page.Search, rev.Product, rev.ReviewText) {
			continue
		}
		items = append(items, rev)
	}

	query.Sort(items, page.Sort, compareReviews)

	total := len(items)
	data := query.Page(items, page.Offset(), page.PageSize)

	result := pagination.NewPageResult(data, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Review, error) {
	rev, err := r.store.Get(id)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &rev, nil
}

func (r *repo) Flag(ctx context.Context, cmd FlagCommand) (*Review, error) {
	for _, rev := range r.store.All() {
		if rev.AnalysisID == cmd.AnalysisID {
			return nil, ErrDuplicate
		}
	}

	rev := Review{
		ID:         uuid.New(),
		AnalysisID: cmd.AnalysisID,
		Product:    cmd.Product,
		Platform:   cmd.Platform,
		ReviewText: cmd.ReviewText,
		TrustScore: cmd.TrustScore,
		Status:     StatusPending,
		FlaggedAt:  time.Now(),
	}

	if err := r.store.Insert(rev.ID, rev); err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("review flagged",
		"id", rev.ID,
		"analysis_id", rev.AnalysisID,
		"trust_score", rev.TrustScore,
	)
	return &rev, nil
}

func (r *repo) Approve(ctx context.Context, id uuid.UUID, cmd ModerateCommand) (*Review, error) {
	return r.moderate(id, cmd, StatusApproved, "review approved")
}

func (r *repo) Remove(ctx context.Context, id uuid.UUID, cmd ModerateCommand) (*Review, error) {
	return r.moderate(id, cmd, StatusRemoved, "review removed")
}

func (r *repo) moderate(id uuid.UUID, cmd ModerateCommand, status Status, msg string) (*Review, error) {
	rev, err := r.store.Update(id, func(rev Review) (Review, error) {
		if rev.Status != StatusPending {
			return rev, ErrNotPending
		}

		now := time.Now()
		rev.Status = status
		rev.ModeratedBy = &cmd.ModeratedBy
		rev.ModeratedAt = &now
		return rev, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(msg, "id", rev.ID, "moderated_by", cmd.ModeratedBy)
	return &rev, nil
}

func compareReviews(field string, a, b Review) int {
	switch field {
	case "product":
		return strings.Compare(a.Product, b.Product)
	case "trust_score":
		switch {
		case a.TrustScore < b.TrustScore:
			return -1
		case a.TrustScore > b.TrustScore:
			return 1
		default:
			return 0
		}
	case "flagged_at":
		return a.FlaggedAt.Compare(b.FlaggedAt)
	default:
		return 0
	}
}
