package ports

import (
	"context"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
)

// UserService defines use-case operations for account management.
type UserService interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	AddWithRole(ctx context.Context, role, username, password string) (*domain.User, error)
	DeleteByID(ctx context.Context, id int) error
}
