package formatting_test

import (
	"errors"
	"testing"

	"github.com/reviewlens/reviewlens/pkg/formatting"
)

type payload struct {
	TrustScore     float64 `json:"trustScore"`
	Classification string  `json:"classification"`
}

func TestParseDirectJSON(t *testing.T) {
	got, err := formatting.Parse[payload](`{"trustScore": 88, "classification": "Genuine"}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got.TrustScore != 88 || got.Classification != "Genuine" {
		t.Errorf("got %+v", got)
	}
}

func TestParseFencedJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "json fence",
			content: "```json\n{\"trustScore\": 23, \"classification\": \"Fake\"}\n```",
		},
		{
			name:    "bare fence",
			content: "```\n{\"trustScore\": 23, \"classification\": \"Fake\"}\n```",
		},
		{
			name:    "fence with prose",
			content: "Here is the analysis:\n```json\n{\"trustScore\": 23, \"classification\": \"Fake\"}\n```\nLet me know if you need more.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.Parse[payload](tt.content)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if got.TrustScore != 23 || got.Classification != "Fake" {
				t.Errorf("got %+v", got)
			}
		})
	}
}

func TestParseFailure(t *testing.T) {
	for _, content := range []string{"not json at all", "```\nstill not json\n```"} {
		if _, err := formatting.Parse[payload](content); !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("Parse(%q) = %v, want ErrParseFailed", content, err)
		}
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"1MB", 1024 * 1024, false},
		{"1.5 KB", 1536, false},
		{"512", 512, false},
		{"2gb", 2 * 1024 * 1024 * 1024, false},
		{"", 0, true},
		{"abc", 0, true},
		{"10 XB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n         int64
		precision int
		want      string
	}{
		{0, 0, "0 B"},
		{512, 0, "512 B"},
		{1024, 0, "1 KB"},
		{1536, 1, "1.5 KB"},
		{1024 * 1024, 0, "1 MB"},
	}

	for _, tt := range tests {
		if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
			t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
		}
	}
}
