package ports

import (
	"context"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts. Both the
// manager and the seller screens share this one store.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	// Create assigns id = max(existing ids)+1 (1 for an empty store) and
	// persists the record. Fails with domain.ErrUserExists when the
	// username is already taken (case-sensitive compare).
	Create(ctx context.Context, user domain.User) (*domain.User, error)
	DeleteByID(ctx context.Context, id int) error
	// FindByCredentials matches username and password exactly and returns
	// domain.ErrInvalidCredentials on any mismatch, without revealing
	// which field was wrong.
	FindByCredentials(ctx context.Context, username, password string) (*domain.User, error)
}
