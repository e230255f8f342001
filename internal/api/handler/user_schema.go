package handler

import "github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginResponse keeps the legacy {role} shape the SPA reads and adds the
// bearer token later requests must carry.
type loginResponse struct {
	Role  string `json:"role"`
	Token string `json:"token"`
}

// messageResponse is the bare {message} shape the login endpoint uses for
// errors.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Account management ---

type addUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse wraps a created account. domain.User strips the password.
type userResponse struct {
	Status string      `json:"status"`
	Data   domain.User `json:"data"`
}

type deleteUserResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// permissionsResponse mirrors the access-control table for the caller's
// role, so the SPA route guard and the server gate share one mapping.
type permissionsResponse struct {
	Role    string          `json:"role"`
	Actions []domain.Action `json:"actions"`
}
