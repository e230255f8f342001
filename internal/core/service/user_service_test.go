package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
)

func TestUserService_AddWithRole_Success(t *testing.T) {
	repo := seededUserRepo()
	svc := NewUserService(repo, discardLogger)

	created, err := svc.AddWithRole(context.Background(), domain.RoleManager, "newmanager", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Role != domain.RoleManager {
		t.Errorf("expected role manager, got %q", created.Role)
	}
	if created.ID == 0 {
		t.Error("expected an assigned id")
	}
}

func TestUserService_AddWithRole_RejectsUnknownRole(t *testing.T) {
	repo := seededUserRepo()
	svc := NewUserService(repo, discardLogger)

	before := len(repo.users)
	_, err := svc.AddWithRole(context.Background(), "superuser", "eve", "pw")
	if err == nil {
		t.Fatal("expected error for unknown role, got nil")
	}
	if len(repo.users) != before {
		t.Error("rejected role must not create an account")
	}
}

func TestUserService_AddWithRole_DuplicateUsername(t *testing.T) {
	svc := NewUserService(seededUserRepo(), discardLogger)

	_, err := svc.AddWithRole(context.Background(), domain.RoleSeller, "seller", "pw")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_ListByRole(t *testing.T) {
	svc := NewUserService(seededUserRepo(), discardLogger)

	sellers, err := svc.ListByRole(context.Background(), domain.RoleSeller)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sellers) != 1 || sellers[0].Username != "seller" {
		t.Errorf("unexpected sellers: %+v", sellers)
	}
}

func TestUserService_DeleteByID(t *testing.T) {
	repo := seededUserRepo()
	svc := NewUserService(repo, discardLogger)

	if err := svc.DeleteByID(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.users) != 1 {
		t.Errorf("expected 1 account left, got %d", len(repo.users))
	}

	if err := svc.DeleteByID(context.Background(), 2); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("second delete: expected ErrUserNotFound, got %v", err)
	}
}
