// Package reviews implements the moderation queue domain for reviewlens.
// Reviews classified as Fake are flagged here for a moderator to approve
// (clear) or remove.
package reviews

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Status represents a flagged review's moderation state.
type Status string

// Valid moderation states.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRemoved  Status = "removed"
)

var statuses = []Status{
	StatusPending,
	StatusApproved,
	StatusRemoved,
}

// ParseStatus validates a string as a known moderation status.
func ParseStatus(s string) (Status, error) {
	v := Status(s)
	if !slices.Contains(statuses, v) {
		return "", ErrInvalidStatus
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known status value.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Review represents a flagged review awaiting or past moderation.
type Review struct {
	ID          uuid.UUID  `json:"id"`
	AnalysisID  uuid.UUID  `json:"analysis_id"`
	Product     string     `json:"product"`
	Platform    string     `json:"platform"`
	ReviewText  string     `json:"review_text"`
	TrustScore  float64    `json:"trust_score"`
	Status      Status     `json:"status"`
	FlaggedAt   time.Time  `json:"flagged_at"`
	ModeratedBy *string    `json:"moderated_by"`
	ModeratedAt *time.Time `json:"moderated_at"`
}

// FlagCommand carries the data needed to flag an analyzed review.
type FlagCommand struct {
	AnalysisID uuid.UUID `json:"analysis_id"`
	Product    string    `json:"product"`
	Platform   string    `json:"platform"`
	ReviewText string    `json:"review_text"`
	TrustScore float64   `json:"trust_score"`
}

// ModerateCommand identifies the moderator resolving a flagged review.
type ModerateCommand struct {
	ModeratedBy string `json:"moderated_by"`
}

// Filters narrows review listings by moderation status and platform.
type Filters struct {
	Status   *Status `json:"status,omitempty"`
	Platform *string `json:"platform,omitempty"`
}

// Matches reports whether a review satisfies every set filter.
func (f Filters) Matches(r Review) bool {
	if f.Status != nil && r.Status != *f.Status {
		return false
	}
	if f.Platform != nil && r.Platform != *f.Platform {
		return false
	}
	return true
}
