package users_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/reviewlens/reviewlens/internal/users"
	"github.com/reviewlens/reviewlens/pkg/pagination"
)

func newSystem(seed []users.User) users.System {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return users.New(logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}, seed)
}

func TestSeedUsersLoaded(t *testing.T) {
	sys := newSystem(users.SeedUsers())

	result, err := sys.List(context.Background(), pagination.PageRequest{}, users.Filters{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Total != 3 {
		t.Fatalf("users = %d, want 3", result.Total)
	}

	admin := users.RoleAdmin
	admins, err := sys.List(context.Background(), pagination.PageRequest{}, users.Filters{Role: &admin})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if admins.Total != 1 || admins.Data[0].Name != "Alex Smith" {
		t.Errorf("admins = %+v, want Alex Smith only", admins.Data)
	}

	suspended := users.StatusSuspended
	result, err = sys.List(context.Background(), pagination.PageRequest{}, users.Filters{Status: &suspended})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Total != 1 || result.Data[0].Name != "John Appleseed" {
		t.Errorf("suspended = %+v, want John Appleseed only", result.Data)
	}
}

func TestCreateUser(t *testing.T) {
	sys := newSystem(nil)

	u, err := sys.Create(context.Background(), users.CreateCommand{
		Name:  "Priya Raman",
		Email: "priya.raman@reviewlens.io",
		Role:  users.RoleUser,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if u.Status != users.StatusActive {
		t.Errorf("Status = %q, want active", u.Status)
	}
	if u.CreatedAt.IsZero() {
		t.Error("CreatedAt should be stamped")
	}
}

func TestCreateValidation(t *testing.T) {
	sys := newSystem(users.SeedUsers())

	tests := []struct {
		name    string
		cmd     users.CreateCommand
		wantErr error
	}{
		{
			name:    "missing name",
			cmd:     users.CreateCommand{Email: "x@reviewlens.io", Role: users.RoleUser},
			wantErr: users.ErrEmptyName,
		},
		{
			name:    "missing email",
			cmd:     users.CreateCommand{Name: "X", Role: users.RoleUser},
			wantErr: users.ErrEmptyEmail,
		},
		{
			name:    "unknown role",
			cmd:     users.CreateCommand{Name: "X", Email: "x@reviewlens.io", Role: "owner"},
			wantErr: users.ErrInvalidRole,
		},
		{
			name: "duplicate email ignores case",
			cmd: users.CreateCommand{
				Name:  "Someone Else",
				Email: "ALEX.SMITH@reviewlens.io",
				Role:  users.RoleUser,
			},
			wantErr: users.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sys.Create(context.Background(), tt.cmd); !errors.Is(err, tt.wantErr) {
				t.Errorf("create = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSuspendAndReinstate(t *testing.T) {
	sys := newSystem(nil)
	ctx := context.Background()

	u, err := sys.Create(ctx, users.CreateCommand{
		Name:  "Priya Raman",
		Email: "priya.raman@reviewlens.io",
		Role:  users.RoleUser,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	suspended, err := sys.Suspend(ctx, u.ID)
	if err != nil {
		t.Fatalf("suspend failed: %v", err)
	}
	if suspended.Status != users.StatusSuspended {
		t.Errorf("Status = %q, want suspended", suspended.Status)
	}

	if _, err := sys.Suspend(ctx, u.ID); !errors.Is(err, users.ErrSuspended) {
		t.Errorf("repeat suspend = %v, want ErrSuspended", err)
	}

	restored, err := sys.Reinstate(ctx, u.ID)
	if err != nil {
		t.Fatalf("reinstate failed: %v", err)
	}
	if restored.Status != users.StatusActive {
		t.Errorf("Status = %q, want active", restored.Status)
	}

	if _, err := sys.Reinstate(ctx, u.ID); !errors.Is(err, users.ErrNotSuspended) {
		t.Errorf("repeat reinstate = %v, want ErrNotSuspended", err)
	}
}

func TestFindMissingUser(t *testing.T) {
	sys := newSystem(nil)

	if _, err := sys.Find(context.Background(), uuid.New()); !errors.Is(err, users.ErrNotFound) {
		t.Errorf("find = %v, want ErrNotFound", err)
	}
}
