package analytics

import "context"

// System defines the public contract for analytics operations.
type System interface {
	Handler() *Handler

	Overview(ctx context.Context) (*Overview, error)
	Report(ctx context.Context) (*Report, error)
	Metrics(ctx context.Context) ([]ModelMetric, error)
}
