package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/api/metrics"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/ports"
)

// AuthService implements login against the user store.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Login matches the credentials against the store and issues a signed token
// carrying the role claim. Any mismatch yields ErrInvalidCredentials without
// revealing which field was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	if username == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByCredentials(ctx, username, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", "", err
	}

	token, err := s.generateToken(user)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login succeeded")
	return token, user.Role, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
