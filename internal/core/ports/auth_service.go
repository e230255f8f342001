package ports

import "context"

// AuthService implements login. The returned token carries the role claim so
// later requests can be gated without server-side session state.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, role string, err error)
}
