package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
)

// Authorize gates a route on the access-control table. The SPA hides the
// same screens client-side; this middleware is the authoritative check.
func Authorize(action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.Allowed(role, action) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
