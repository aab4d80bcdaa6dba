// Package analytics implements dashboard aggregations for reviewlens:
// overview counters, monthly classification trends, daily usage, and
// language distribution, computed over stored analyses.
package analytics

// Overview summarizes the stored analyses and the moderation queue.
type Overview struct {
	TotalAnalyses     int     `json:"total_analyses"`
	GenuineCount      int     `json:"genuine_count"`
	FakeCount         int     `json:"fake_count"`
	FakeRate          float64 `json:"fake_rate"`
	AverageTrustScore float64 `json:"average_trust_score"`
	PendingModeration int     `json:"pending_moderation"`
}

// Trend is a month bucket of classification counts.
type Trend struct {
	Month   string `json:"month"`
	Genuine int    `json:"genuine"`
	Fake    int    `json:"fake"`
}

// DailyUsage is a day bucket of analysis counts.
type DailyUsage struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// LanguageShare is one slice of the language distribution.
type LanguageShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ModelMetric is a static evaluation row for a backing model.
type ModelMetric struct {
	Name     string `json:"name"`
	Accuracy string `json:"accuracy"`
	F1       string `json:"f1"`
}

// Report bundles every chart the dashboard renders.
type Report struct {
	Overview   Overview        `json:"overview"`
	Trends     []Trend         `json:"trends"`
	DailyUsage []DailyUsage    `json:"daily_usage"`
	Languages  []LanguageShare `json:"languages"`
}
