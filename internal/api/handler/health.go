package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// storePinger is the readiness view of a repository: can its backing
// document be loaded right now?
type storePinger interface {
	Ping(ctx context.Context) error
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// Checks that both store documents are loadable before declaring ready.
type ReadinessHandler struct {
	users    storePinger
	products storePinger
}

func NewReadinessHandler(users, products storePinger) *ReadinessHandler {
	return &ReadinessHandler{users: users, products: products}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status string                      `json:"status"`
	Checks map[string]dependencyStatus `json:"checks"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx := c.Request().Context()

	checks := map[string]dependencyStatus{
		"users":    checkStore(ctx, h.users),
		"products": checkStore(ctx, h.products),
	}

	code := http.StatusOK
	overall := "ok"
	for _, s := range checks {
		if s.Status != "ok" {
			code = http.StatusServiceUnavailable
			overall = "unavailable"
			break
		}
	}

	return c.JSON(code, readinessResponse{Status: overall, Checks: checks})
}

func checkStore(ctx context.Context, p storePinger) dependencyStatus {
	if err := p.Ping(ctx); err != nil {
		return dependencyStatus{Status: "error", Error: err.Error()}
	}
	return dependencyStatus{Status: "ok"}
}
