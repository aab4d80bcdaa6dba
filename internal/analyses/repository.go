package analyses

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/reviewlens/reviewlens/internal/reviews"
	"github.com/reviewlens/reviewlens/internal/workflow"
	"github.com/reviewlens/reviewlens/pkg/pagination"
	"github.com/reviewlens/reviewlens/pkg/query"
	"github.com/reviewlens/reviewlens/pkg/repository"
)

type repo struct {
	rt             *workflow.Runtime
	queue          reviews.System
	store          *repository.Store[Analysis]
	logger         *slog.Logger
	pagination     pagination.Config
	maxRequestSize int64
}

// New creates an analysis repository implementing the System interface.
// Analyses classified as Fake are flagged into the moderation queue.
func New(
	rt *workflow.Runtime,
	queue reviews.System,
	logger *slog.Logger,
	pagination pagination.Config,
	maxRequestSize int64,
	seed []Analysis,
) System {
	store := repository.NewStore[Analysis]()
	for _, a := range seed {
		_ = store.Insert(a.ID, a)
	}

	return &repo{
		rt:             rt,
		queue:          queue,
		store:          store,
		logger:         logger.With("system", "analyses"),
		pagination:     pagination,
		maxRequestSize: maxRequestSize,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination, r.maxRequestSize)
}

// Analyze validates a submission, runs the two-stage workflow, and stores
// the merged record. Validation failures return before any service call.
func (r *repo) Analyze(ctx context.Context, cmd AnalyzeCommand) (*Analysis, error) {
	if err := Validate(cmd); err != nil {
		return nil, err
	}

	req := workflow.AnalysisRequest{
		ReviewText:  cmd.Review,
		ProductName: cmd.Product,
		Platform:    cmd.Platform,
		Language:    cmd.Language,
	}

	result, err := workflow.Execute(ctx, r.rt, req)
	if err != nil {
		return nil, err
	}

	a := merge(result, r.rt.ModelName, r.rt.ProviderName)

	if err := r.store.Insert(a.ID, a); err != nil {
		return nil, err
	}

	r.logger.Info("analysis complete",
		"id", a.ID,
		"product", a.Product,
		"trust_score", a.TrustScore,
		"classification", a.Classification,
	)

	if a.Classification == workflow.ClassificationFake {
		r.flag(ctx, a)
	}

	return &a, nil
}

// flag pushes a Fake-classified analysis into the moderation queue. A flag
// failure does not fail the analysis; the record is already stored.
func (r *repo) flag(ctx context.Context, a Analysis) {
	_, err := r.queue.Flag(ctx, reviews.FlagCommand{
		AnalysisID: a.ID,
		Product:    a.Product,
		Platform:   a.Platform,
		ReviewText: a.ReviewText,
		TrustScore: a.TrustScore,
	})
	if err != nil {
		r.logger.Warn("failed to flag analysis for moderation",
			"id", a.ID,
			"error", err,
		)
	}
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Analysis], error) {
	page.Normalize(r.pagination)

	var items []Analysis
	for _, a := range r.store.All() {
		if !filters.Matches(a) {
			continue
		}
		if !query.MatchesSearch(page.Search, a.Product, a.ReviewText) {
			continue
		}
		items = append(items, a)
	}

	query.Sort(items, page.Sort, compareAnalyses)

	total := len(items)
	data := query.Page(items, page.Offset(), page.PageSize)

	result := pagination.NewPageResult(data, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	a, err := r.store.Get(id)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrNotFound)
	}
	return &a, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.store.Delete(id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrNotFound)
	}

	r.logger.Info("analysis deleted", "id", id)
	return nil
}

func (r *repo) All(ctx context.Context) ([]Analysis, error) {
	return r.store.All(), nil
}

func compareAnalyses(field string, a, b Analysis) int {
	switch field {
	case "product":
		return strings.Compare(a.Product, b.Product)
	case "platform":
		return strings.Compare(a.Platform, b.Platform)
	case "language":
		return strings.Compare(a.Language, b.Language)
	case "trust_score":
		switch {
		case a.TrustScore < b.TrustScore:
			return -1
		case a.TrustScore > b.TrustScore:
			return 1
		default:
			return 0
		}
	case "analyzed_at":
		return a.AnalyzedAt.Compare(b.AnalyzedAt)
	default:
		return 0
	}
}
