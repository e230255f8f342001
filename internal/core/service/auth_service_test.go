package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     []domain.User
	findCalls int
	failWith  error
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.users, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user domain.User) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	user.ID = len(r.users) + 1
	r.users = append(r.users, user)
	clone := user
	return &clone, nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id int) error {
	if r.failWith != nil {
		return r.failWith
	}
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByCredentials(_ context.Context, username, password string) (*domain.User, error) {
	r.findCalls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.users {
		if u.Username == username && u.Password == password {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

const testSecret = "test-secret"

func seededUserRepo() *stubUserRepo {
	return &stubUserRepo{users: []domain.User{
		{ID: 1, Username: "admin", Password: "admin123", Role: domain.RoleAdmin},
		{ID: 2, Username: "seller", Password: "seller123", Role: domain.RoleSeller},
	}}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	svc := NewAuthService(seededUserRepo(), testSecret, time.Hour, discardLogger)

	token, role, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != domain.RoleAdmin {
		t.Errorf("expected role admin, got %q", role)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
}

func TestAuthService_Login_TokenCarriesClaims(t *testing.T) {
	svc := NewAuthService(seededUserRepo(), testSecret, time.Hour, discardLogger)

	token, _, err := svc.Login(context.Background(), "seller", "seller123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["username"] != "seller" || claims["role"] != domain.RoleSeller {
		t.Errorf("unexpected claims: %v", claims)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("exp claim missing")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		t.Error("token already expired")
	}
}

func TestAuthService_Login_WrongCredentials(t *testing.T) {
	svc := NewAuthService(seededUserRepo(), testSecret, time.Hour, discardLogger)

	cases := []struct{ username, password string }{
		{"admin", "wrong"},
		{"ghost", "admin123"},
	}
	for _, tc := range cases {
		_, _, err := svc.Login(context.Background(), tc.username, tc.password)
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("login(%q, %q): expected ErrInvalidCredentials, got %v", tc.username, tc.password, err)
		}
	}
}

func TestAuthService_Login_EmptyCredentialsSkipStore(t *testing.T) {
	repo := seededUserRepo()
	svc := NewAuthService(repo, testSecret, time.Hour, discardLogger)

	for _, tc := range []struct{ username, password string }{
		{"", "admin123"},
		{"admin", ""},
		{"", ""},
	} {
		_, _, err := svc.Login(context.Background(), tc.username, tc.password)
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	}
	if repo.findCalls != 0 {
		t.Errorf("empty credentials must not reach the store, got %d lookups", repo.findCalls)
	}
}

func TestAuthService_Login_StoreError(t *testing.T) {
	repo := &stubUserRepo{failWith: domain.ErrStoreCorrupt}
	svc := NewAuthService(repo, testSecret, time.Hour, discardLogger)

	_, _, err := svc.Login(context.Background(), "admin", "admin123")
	if !errors.Is(err, domain.ErrStoreCorrupt) {
		t.Errorf("expected store error to pass through, got %v", err)
	}
}

func TestAuthService_DefaultTokenTTL(t *testing.T) {
	svc := NewAuthService(seededUserRepo(), testSecret, 0, discardLogger)

	token, _, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}); err != nil {
		t.Fatalf("token does not verify: %v", err)
	}

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	if until := time.Until(exp); until < 23*time.Hour || until > 25*time.Hour {
		t.Errorf("expected ~24h default lifetime, got %v", until)
	}
}
