package analyses

import "unicode/utf8"

const minReviewLength = 10

// Validation messages match the dashboard's form copy.
const (
	msgReviewTooShort   = "Review must be at least 10 characters."
	msgProductRequired  = "Product is required."
	msgPlatformRequired = "Platform is required."
	msgLanguageRequired = "Language is required."
)

// Validate checks an analysis submission and returns nil when it is
// acceptable. Length is measured in characters, not bytes, and whitespace
// counts: the review field is passed through verbatim.
func Validate(cmd AnalyzeCommand) *ValidationError {
	fields := FieldErrors{}

	if utf8.RuneCountInString(cmd.Review) < minReviewLength {
		fields["review"] = append(fields["review"], msgReviewTooShort)
	}
	if cmd.Product == "" {
		fields["product"] = append(fields["product"], msgProductRequired)
	}
	if cmd.Platform == "" {
		fields["platform"] = append(fields["platform"], msgPlatformRequired)
	}
	if cmd.Language == "" {
		fields["language"] = append(fields["language"], msgLanguageRequired)
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
