package analyses

import (
	"time"

	"github.com/google/uuid"

	"github.com/reviewlens/reviewlens/internal/workflow"
)

// SeedAnalyses returns the reference analyses loaded at startup so the
// dashboard has data before the first submission. Records are stamped with
// the configured backend names.
func SeedAnalyses(modelName, providerName string) []Analysis {
	base := time.Date(2025, time.August, 29, 18, 0, 0, 0, time.UTC)

	return []Analysis{
		{
			ID:             uuid.MustParse("7a4b9c1d-3e58-4f26-a917-5d2c8e0b6f43"),
			ReviewText:     "This watch is amazing! The battery life is incredible and it tracks my workouts perfectly. Highly recommend to anyone looking for a solid smartwatch.",
			Product:        "Smartwatch Series X",
			Platform:       "Amazon",
			Language:       "English",
			TrustScore:     88,
			Classification: workflow.ClassificationGenuine,
			HighlightedKeywords: []string{
				"amazing", "incredible", "perfectly", "Highly recommend",
			},
			SummarySentences: []string{
				"Positive sentiment and specific feature praise suggest an authentic user experience.",
				"The use of enthusiastic but not overly generic language increases confidence.",
			},
			ConfidenceBreakdown: "Feature-specific praise and moderate enthusiasm carry most of the score; no template or incentive markers detected.",
			AnalyzedAt:          base.Add(-1 * time.Hour),
			ModelName:           modelName,
			ProviderName:        providerName,
		},
		{
			ID:             uuid.MustParse("4e8f2a6b-9c17-4d53-b2e8-1f7a3c5d9024"),
			ReviewText:     "DO NOT BUY! This is a total scam. The product never arrived and customer service was a nightmare. I want my money back immediately. One star.",
			Product:        "Quantum Laptop Pro",
			Platform:       "Google",
			Language:       "English",
			TrustScore:     23,
			Classification: workflow.ClassificationFake,
			HighlightedKeywords: []string{
				"DO NOT BUY", "scam", "nightmare", "money back",
			},
			SummarySentences: []string{
				"The review uses overly aggressive, capitalized phrases and common scam-related keywords.",
				"Lack of specific details about the product itself is a major red flag.",
			},
			ConfidenceBreakdown: "Aggressive capitalized phrasing and absence of any product detail dominate the score; the complaint describes fulfilment, not the product.",
			AnalyzedAt:          base.Add(-3 * time.Hour),
			ModelName:           modelName,
			ProviderName:        providerName,
		},
		{
			ID:             uuid.MustParse("1c5d8e2f-6a39-4b74-9c06-2e8b4d7a1f35"),
			ReviewText:     "The noise cancellation is top-notch. I use them on my daily commute and it completely blocks out the train noise. Sound quality is crisp and clear.",
			Product:        "AcousticBliss Headphones",
			Platform:       "Flipkart",
			Language:       "English",
			TrustScore:     92,
			Classification: workflow.ClassificationGenuine,
			HighlightedKeywords: []string{
				"top-notch", "daily commute", "crisp and clear",
			},
			SummarySentences: []string{
				"Mentions a specific use case (daily commute) and details about features (noise cancellation), which points to a genuine purchase.",
				"The language is positive and descriptive without being hyperbolic.",
			},
			ConfidenceBreakdown: "A concrete usage scenario paired with feature-level detail is the strongest authenticity signal in this review.",
			AnalyzedAt:          base.Add(-5 * time.Hour),
			ModelName:           modelName,
			ProviderName:        providerName,
		},
		{
			ID:             uuid.MustParse("8b2c6d4e-5f91-4a38-8d27-3a9e1c6b5f48"),
			ReviewText:     "Pretty good drone for the price. The camera quality is decent, though it struggles a bit in low light. Flight controls are intuitive. A solid choice for beginners.",
			Product:        "Stellar Drone 4K",
			Platform:       "Other",
			Language:       "English",
			TrustScore:     76,
			Classification: workflow.ClassificationGenuine,
			HighlightedKeywords: []string{
				"decent", "struggles a bit", "intuitive", "beginners",
			},
			SummarySentences: []string{
				"The review provides a balanced view, mentioning both pros and cons (low light camera performance).",
				"This balanced perspective is a strong indicator of a real customer review.",
			},
			ConfidenceBreakdown: "Balanced pros and cons lower suspicion considerably; the mild low-light criticism reads as first-hand experience.",
			AnalyzedAt:          base.Add(-12 * time.Hour),
			ModelName:           modelName,
			ProviderName:        providerName,
		},
	}
}
