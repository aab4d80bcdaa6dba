// Package users implements the dashboard user directory for reviewlens.
package users

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Role represents a user's access level.
type Role string

// Valid roles.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var roles = []Role{RoleAdmin, RoleUser}

// ParseRole validates a string as a known role.
func ParseRole(s string) (Role, error) {
	v := Role(s)
	if !slices.Contains(roles, v) {
		return "", ErrInvalidRole
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known role value.
func (r *Role) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v, err := ParseRole(raw)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Status represents a user account's state.
type Status string

// Valid account states.
const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// User represents a dashboard account.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommand carries the data needed to create a user.
type CreateCommand struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Filters narrows user listings by role and status.
type Filters struct {
	Role   *Role   `json:"role,omitempty"`
	Status *Status `json:"status,omitempty"`
}

// Matches reports whether a user satisfies every set filter.
func (f Filters) Matches(u User) bool {
	if f.Role != nil && u.Role != *f.Role {
		return false
	}
	if f.Status != nil && u.Status != *f.Status {
		return false
	}
	return true
}
