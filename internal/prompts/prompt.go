// Package prompts implements the prompt override domain for reviewlens.
// It provides types, data access, and HTTP handlers for managing named
// instruction overrides per analysis stage, plus the immutable output
// specifications each stage's response must satisfy.
package prompts

import "github.com/google/uuid"

// Prompt represents a named instruction override for an analysis stage.
type Prompt struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Stage        Stage     `json:"stage"`
	Instructions string    `json:"instructions"`
	Description  *string   `json:"description"`
	Active       bool      `json:"active"`
}

// CreateCommand carries the data needed to create a new prompt override.
type CreateCommand struct {
	Name         string  `json:"name"`
	Stage        Stage   `json:"stage"`
	Instructions string  `json:"instructions"`
	Description  *string `json:"description"`
}

// UpdateCommand carries the data needed to update an existing prompt override.
type UpdateCommand struct {
	Name         string  `json:"name"`
	Stage        Stage   `json:"stage"`
	Instructions string  `json:"instructions"`
	Description  *string `json:"description"`
}

// Filters narrows prompt listings by stage and active flag.
type Filters struct {
	Stage  *Stage `json:"stage,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// Matches reports whether a prompt satisfies every set filter.
func (f Filters) Matches(p Prompt) bool {
	if f.Stage != nil && p.Stage != *f.Stage {
		return false
	}
	if f.Active != nil && p.Active != *f.Active {
		return false
	}
	return true
}
