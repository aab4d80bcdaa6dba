package analyses_test

import (
	"testing"

	"github.com/reviewlens/reviewlens/internal/analyses"
)

func validCommand() analyses.AnalyzeCommand {
	return analyses.AnalyzeCommand{
		Review:   "This watch is amazing! The battery life is incredible.",
		Product:  "Smartwatch Series X",
		Platform: "Amazon",
		Language: "English",
	}
}

func TestValidateAcceptsCompleteSubmission(t *testing.T) {
	if err := analyses.Validate(validCommand()); err != nil {
		t.Errorf("unexpected validation error: %+v", err.Fields)
	}
}

func TestValidateReviewLength(t *testing.T) {
	tests := []struct {
		name    string
		review  string
		wantErr bool
	}{
		{"empty", "", true},
		{"nine characters", "too short", true},
		{"exactly ten characters", "ten chars!", false},
		{"ten spaces count as content", "          ", false},
		{"nine multibyte runes", "ದೊಡ್ಡದಲ್ಲ", true},
		{"ten multibyte runes", "ಈ ಉತ್ಪನ್ನ ಚೆ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCommand()
			cmd.Review = tt.review

			err := analyses.Validate(cmd)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %+v", err.Fields)
				}
				return
			}

			if err == nil {
				t.Fatal("expected validation error")
			}
			msgs := err.Fields["review"]
			if len(msgs) != 1 || msgs[0] != "Review must be at least 10 characters." {
				t.Errorf("review messages = %v", msgs)
			}
		})
	}
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*analyses.AnalyzeCommand)
		field string
		want  string
	}{
		{
			name:  "missing product",
			mod:   func(c *analyses.AnalyzeCommand) { c.Product = "" },
			field: "product",
			want:  "Product is required.",
		},
		{
			name:  "missing platform",
			mod:   func(c *analyses.AnalyzeCommand) { c.Platform = "" },
			field: "platform",
			want:  "Platform is required.",
		},
		{
			name:  "missing language",
			mod:   func(c *analyses.AnalyzeCommand) { c.Language = "" },
			field: "language",
			want:  "Language is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCommand()
			tt.mod(&cmd)

			err := analyses.Validate(cmd)
			if err == nil {
				t.Fatal("expected validation error")
			}
			msgs := err.Fields[tt.field]
			if len(msgs) != 1 || msgs[0] != tt.want {
				t.Errorf("%s messages = %v, want [%q]", tt.field, msgs, tt.want)
			}
		})
	}
}

func TestValidateCollectsAllFailures(t *testing.T) {
	err := analyses.Validate(analyses.AnalyzeCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	for _, field := range []string{"review", "product", "platform", "language"} {
		if len(err.Fields[field]) == 0 {
			t.Errorf("missing messages for field %q", field)
		}
	}
}
