package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/ports"
)

// UserHandler handles HTTP requests for account management. The manager and
// seller routes share one store; only the role they pin differs.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Users handles GET /users — the full account dump, passwords stripped.
//
// @Summary      List all user accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      500  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) Users(c echo.Context) error {
	users, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Status:  "error",
			Message: "Failed to fetch users",
			Cause:   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, users)
}

// Managers handles GET /managers.
//
// @Summary      List manager accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      500  {object}  errorResponse
// @Router       /managers [get]
func (h *UserHandler) Managers(c echo.Context) error {
	return h.listByRole(c, domain.RoleManager)
}

// Sellers handles GET /sellers.
//
// @Summary      List seller accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      500  {object}  errorResponse
// @Router       /sellers [get]
func (h *UserHandler) Sellers(c echo.Context) error {
	return h.listByRole(c, domain.RoleSeller)
}

func (h *UserHandler) listByRole(c echo.Context, role string) error {
	users, err := h.service.ListByRole(c.Request().Context(), role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Status:  "error",
			Message: "Failed to fetch " + role + "s",
			Cause:   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, users)
}

// AddManager handles POST /addmanager.
//
// @Summary      Add a manager account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addUserRequest  true  "Credentials for the new account"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /addmanager [post]
func (h *UserHandler) AddManager(c echo.Context) error {
	return h.addWithRole(c, domain.RoleManager)
}

// AddSeller handles POST /addseller.
//
// @Summary      Add a seller account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addUserRequest  true  "Credentials for the new account"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /addseller [post]
func (h *UserHandler) AddSeller(c echo.Context) error {
	return h.addWithRole(c, domain.RoleSeller)
}

func (h *UserHandler) addWithRole(c echo.Context, role string) error {
	var req addUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Status: "error", Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Status: "error", Message: err.Error()})
	}

	created, err := h.service.AddWithRole(c.Request().Context(), role, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusBadRequest, errorResponse{Status: "error", Message: "Username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Status:  "error",
			Message: "Failed to add " + role,
			Cause:   err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, userResponse{Status: "success", Data: *created})
}

// DeleteManager handles DELETE /deletemanager/:id.
//
// @Summary      Delete a manager account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Numeric user id"
// @Success      200  {object}  deleteUserResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /deletemanager/{id} [delete]
func (h *UserHandler) DeleteManager(c echo.Context) error {
	return h.deleteByID(c, "Manager")
}

// DeleteSeller handles DELETE /deleteseller/:id.
//
// @Summary      Delete a seller account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Numeric user id"
// @Success      200  {object}  deleteUserResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /deleteseller/{id} [delete]
func (h *UserHandler) DeleteSeller(c echo.Context) error {
	return h.deleteByID(c, "Seller")
}

func (h *UserHandler) deleteByID(c echo.Context, label string) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Status: "error", Message: "id must be a number"})
	}

	if err := h.service.DeleteByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{
				Status:  "error",
				Message: fmt.Sprintf("%s with id %d not found", label, id),
			})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Status:  "error",
			Message: "Failed to delete " + label,
			Cause:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, deleteUserResponse{
		Status:  "success",
		Message: fmt.Sprintf("%s with id %d deleted successfully", label, id),
		ID:      id,
	})
}

// Permissions handles GET /permissions — the caller's allowed actions, for
// the SPA route guard.
//
// @Summary      List the caller's allowed actions
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  permissionsResponse
// @Failure      401  {object}  errorResponse
// @Router       /permissions [get]
func (h *UserHandler) Permissions(c echo.Context) error {
	role, err := roleFromContext(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, permissionsResponse{
		Role:    role,
		Actions: domain.ActionsFor(role),
	})
}
