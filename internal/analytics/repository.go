package analytics

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/reviewlens/reviewlens/internal/analyses"
	"github.com/reviewlens/reviewlens/internal/reviews"
	"github.com/reviewlens/reviewlens/internal/workflow"
	"github.com/reviewlens/reviewlens/pkg/pagination"
)

type repo struct {
	analyses analyses.System
	queue    reviews.System
	metrics  []ModelMetric
	logger   *slog.Logger
}

// New creates an analytics repository over the analysis and moderation
// systems. The metrics slice is the static model evaluation table.
func New(
	analysesSys analyses.System,
	queue reviews.System,
	metrics []ModelMetric,
	logger *slog.Logger,
) System {
	return &repo{
		analyses: analysesSys,
		queue:    queue,
		metrics:  metrics,
		logger:   logger.With("system", "analytics"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Overview(ctx context.Context) (*Overview, error) {
	items, err := r.analyses.All(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := r.pendingCount(ctx)
	if err != nil {
		return nil, err
	}

	overview := Overview{
		TotalAnalyses:     len(items),
		PendingModeration: pending,
	}

	var scoreSum float64
	for _, a := range items {
		scoreSum += a.TrustScore
		if a.Classification == workflow.ClassificationFake {
			overview.FakeCount++
		} else {
			overview.GenuineCount++
		}
	}

	if overview.TotalAnalyses > 0 {
		total := float64(overview.TotalAnalyses)
		overview.FakeRate = round2(float64(overview.FakeCount) / total)
		overview.AverageTrustScore = round2(scoreSum / total)
	}

	return &overview, nil
}

// Report assembles every dashboard chart. Sections are computed
// concurrently; the first failure cancels the rest.
func (r *repo) Report(ctx context.Context) (*Report, error) {
	var report Report

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		overview, err := r.Overview(ctx)
		if err != nil {
			return err
		}
		report.Overview = *overview
		return nil
	})

	g.Go(func() error {
		trends, err := r.trends(ctx)
		if err != nil {
			return err
		}
		report.Trends = trends
		return nil
	})

	g.Go(func() error {
		usage, err := r.dailyUsage(ctx)
		if err != nil {
			return err
		}
		report.DailyUsage = usage
		return nil
	})

	g.Go(func() error {
		languages, err := r.languages(ctx)
		if err != nil {
			return err
		}
		report.Languages = languages
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &report, nil
}

func (r *repo) Metrics(ctx context.Context) ([]ModelMetric, error) {
	return r.metrics, nil
}

func (r *repo) pendingCount(ctx context.Context) (int, error) {
	status := reviews.StatusPending

	// Only the total matters; request the smallest page.
	page := pagination.PageRequest{Page: 1, PageSize: 1}
	result, err := r.queue.List(ctx, page, reviews.Filters{Status: &status})
	if err != nil {
		return 0, err
	}

	return result.Total, nil
}

func (r *repo) trends(ctx context.Context) ([]Trend, error) {
	items, err := r.analyses.All(ctx)
	if err != nil {
		return nil, err
	}

	buckets := map[string]*Trend{}
	var order []string

	for _, a := range items {
		month := a.AnalyzedAt.Format("Jan")
		key := a.AnalyzedAt.Format("2006-01")

		bucket, ok := buckets[key]
		if !ok {
			bucket = &Trend{Month: month}
			buckets[key] = bucket
			order = append(order, key)
		}

		if a.Classification == workflow.ClassificationFake {
			bucket.Fake++
		} else {
			bucket.Genuine++
		}
	}

	sort.Strings(order)

	trends := make([]Trend, 0, len(order))
	for _, key := range order {
		trends = append(trends, *buckets[key])
	}
	return trends, nil
}

func (r *repo) dailyUsage(ctx context.Context) ([]DailyUsage, error) {
	items, err := r.analyses.All(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, a := range items {
		counts[a.AnalyzedAt.Format("2006-01-02")]++
	}

	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	usage := make([]DailyUsage, 0, len(dates))
	for _, date := range dates {
		usage = append(usage, DailyUsage{Date: date, Count: counts[date]})
	}
	return usage, nil
}

func (r *repo) languages(ctx context.Context) ([]LanguageShare, error) {
	items, err := r.analyses.All(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	var order []string
	for _, a := range items {
		if _, ok := counts[a.Language]; !ok {
			order = append(order, a.Language)
		}
		counts[a.Language]++
	}

	// Largest share first, first-seen order breaking ties.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	shares := make([]LanguageShare, 0, len(order))
	for _, name := range order {
		shares = append(shares, LanguageShare{Name: name, Value: counts[name]})
	}
	return shares, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
