package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// roleFromContext extracts the role claim injected by the Auth middleware.
// An empty role means the middleware did not run or the token carried no
// role; either way the request cannot be authorized.
func roleFromContext(c echo.Context) (string, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return role, nil
}
