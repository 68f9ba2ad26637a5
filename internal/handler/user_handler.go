package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"userhub/internal/service"
)

// UserHandler bundles user CRUD endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents a registration request.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest represents a partial update; nil fields are untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// ReplaceUserRequest represents a full update.
type ReplaceUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// CreateUser godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User payload"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 409 {object} Envelope
// @Failure 422 {object} Envelope
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusUnprocessableEntity, validationMessage(err))
	}

	user, err := h.svc.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondSuccess(c, http.StatusCreated, "User created", user)
}

// ListUsers godoc
// @Summary List users with pagination
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(10)
// @Success 200 {object} Envelope
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 10)

	result, err := h.svc.ListUsers(c.Request().Context(), page, perPage)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondSuccess(c, http.StatusOK, "Success", result)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondSuccess(c, http.StatusOK, "Success", user)
}

// UpdateUser godoc
// @Summary Partially update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 422 {object} Envelope
// @Router /user/{id} [patch]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Name == nil && req.Email == nil {
		return respondError(c, http.StatusBadRequest, "no input provided")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusUnprocessableEntity, validationMessage(err))
	}

	user, err := h.svc.UpdateUser(c.Request().Context(), id, req.Name, req.Email)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondSuccess(c, http.StatusOK, "User updated", user)
}

// ReplaceUser godoc
// @Summary Replace a user's profile fields
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body ReplaceUserRequest true "Full profile"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 422 {object} Envelope
// @Router /user/{id} [put]
func (h *UserHandler) ReplaceUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	var req ReplaceUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusUnprocessableEntity, validationMessage(err))
	}

	user, err := h.svc.ReplaceUser(c.Request().Context(), id, req.Name, req.Email)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondSuccess(c, http.StatusOK, "User replaced", user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} Envelope
// @Router /user/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return respondDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.ErrBadRequest
	}
	return uint(id), nil
}

func queryInt(c echo.Context, name string, def int) int {
	if v := c.QueryParam(name); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
