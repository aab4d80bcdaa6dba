package prompts

const analyzeSpec = `Respond with a JSON object matching this exact structure:

{
  "trustScore": 88,
  "classification": "Genuine",
  "explanation": {
    "highlightedKeywords": "<keywords>",
    "summarySentences": "<summary>",
    "confidenceBreakdown": "<breakdown>"
  }
}

Field constraints:
- trustScore: Number between 0 and 100 indicating the trustworthiness of
  the review. Higher means more likely genuine.
- classification: Exactly "Fake" or "Genuine". No other value is accepted.
- explanation.highlightedKeywords: Descriptive string naming the keywords
  from the review that contribute to the trust score.
- explanation.summarySentences: Descriptive string summarizing why the
  review received its trust score.
- explanation.confidenceBreakdown: Descriptive string breaking down the
  confidence in the classification.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Base the analysis only on the review text and metadata provided
- Never leave classification empty or invent a third label`

const explainSpec = `Respond with a JSON object matching this exact structure:

{
  "highlightedKeywords": ["<keyword1>", "<keyword2>"],
  "summarySentences": ["<sentence1>", "<sentence2>"]
}

Field constraints:
- highlightedKeywords: Array of keywords from the review that significantly
  contribute to the trust score, in display order.
- summarySentences: Array of concise sentences explaining why the review was
  classified as fake or genuine, referencing the highlighted keywords where
  applicable.

Example output:

{
  "highlightedKeywords": ["unreliable", "scam", "never", "refund"],
  "summarySentences": [
    "The review contains strong negative language such as 'unreliable' and 'scam', indicating a potential issue.",
    "The reviewer mentions 'never' receiving a refund, which is a common complaint in fake reviews.",
    "The combination of these factors contributes to the review being classified as fake."
  ]
}

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Keywords must be tokens that appear in the review text
- Keep both arrays non-empty and consistent with the provided classification`

var specs = map[Stage]string{
	StageAnalyze: analyzeSpec,
	StageExplain: explainSpec,
}

// Spec returns the hardcoded specification for an analysis stage.
// Specifications define the expected output format and behavioral constraints
// and cannot be overridden at runtime.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
