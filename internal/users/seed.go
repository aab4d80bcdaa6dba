package users

import (
	"time"

	"github.com/google/uuid"
)

// SeedUsers returns the default dashboard accounts loaded at startup.
func SeedUsers() []User {
	base := time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC)

	return []User{
		{
			ID:        uuid.MustParse("5f1c7e2a-9d43-4f6b-8a21-0c3d9e5b7f10"),
			Name:      "Alex Smith",
			Email:     "alex.smith@reviewlens.io",
			Role:      RoleAdmin,
			Status:    StatusActive,
			CreatedAt: base,
		},
		{
			ID:        uuid.MustParse("2b8d4a6c-1e59-4c87-b3f4-7a0e2c9d5816"),
			Name:      "Jane Doe",
			Email:     "jane.doe@reviewlens.io",
			Role:      RoleUser,
			Status:    StatusActive,
			CreatedAt: base.Add(26 * time.Hour),
		},
		{
			ID:        uuid.MustParse("9c3e5b7d-8f12-4a64-9d05-3b6f1a8c4e27"),
			Name:      "John Appleseed",
			Email:     "john.appleseed@reviewlens.io",
			Role:      RoleUser,
			Status:    StatusSuspended,
			CreatedAt: base.Add(75 * time.Hour),
		},
	}
}
