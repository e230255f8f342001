package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/api/metrics"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/ports"
)

// UserService implements account management over a UserRepository.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	return s.repo.ListByRole(ctx, role)
}

// AddWithRole creates an account with the role fixed by the calling
// operation. The repository enforces username uniqueness and assigns the id.
func (s *UserService) AddWithRole(ctx context.Context, role, username, password string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	created, err := s.repo.Create(ctx, domain.User{
		Username: username,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.WithLabelValues(role).Inc()
	s.log.Info().Int("id", created.ID).Str("username", created.Username).Str("role", role).Msg("user created")
	return created, nil
}

func (s *UserService) DeleteByID(ctx context.Context, id int) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	s.log.Info().Int("id", id).Msg("user deleted")
	return nil
}
