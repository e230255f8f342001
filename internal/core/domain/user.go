package domain

import "errors"

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleSeller   = "seller"
	RoleEmployee = "employee"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid username or password")

// User models an account in the admin panel. The password never leaves the
// server: the json:"-" tag strips it from every response, list or create.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// ValidRole reports whether role is one of the four known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleSeller, RoleEmployee:
		return true
	}
	return false
}
