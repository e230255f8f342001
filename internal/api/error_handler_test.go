package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrProductNotFound, http.StatusNotFound, "Product not found"},
		{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{domain.ErrUserExists, http.StatusBadRequest, "Username already exists"},
		{domain.ErrMissingFields, http.StatusBadRequest, "Name, brand, and category are required"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
	}

	for _, tc := range cases {
		rec, body := renderError(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["status"] != "error" || body["message"] != tc.message {
			t.Errorf("%v: unexpected body %v", tc.err, body)
		}
	}
}

func TestErrorHandler_WrappedErrorsStillMap(t *testing.T) {
	wrapped := errors.Join(errors.New("while deleting"), domain.ErrProductNotFound)
	rec, _ := renderError(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped not-found, got %d", rec.Code)
	}
}

func TestErrorHandler_StoreCorruptCarriesCause(t *testing.T) {
	rec, body := renderError(t, domain.ErrStoreCorrupt)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["message"] != "Storage failure" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if body["error"] == nil || body["error"] == "" {
		t.Error("expected underlying cause in error field")
	}
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["message"] != "missing authorization header" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	rec, body := renderError(t, errors.New("pointer dereference in the weeds"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["message"] != "internal server error" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if _, leaked := body["error"]; leaked {
		t.Error("unexpected cause leak for unknown error")
	}
}
