package handler

import (
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"userhub/internal/service"
)

// AuthHandler handles login and change-password endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest represents a change-password request.
type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return respondError(c, http.StatusBadRequest, "email and password are required")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondSuccess(c, http.StatusOK, "Login successful", echo.Map{"access_token": token})
}

// ChangePassword godoc
// @Summary Change the authenticated user's password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Passwords"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Security BearerAuth
// @Router /change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, ok := subjectID(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "missing or invalid token")
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	if err := h.authService.ChangePassword(c.Request().Context(), userID, req.OldPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		return respondDomainError(c, err)
	}
	return respondSuccess(c, http.StatusOK, "Password updated successfully", nil)
}

// subjectID extracts the user id from the token parsed by the JWT middleware.
func subjectID(c echo.Context) (uint, bool) {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return 0, false
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return 0, false
	}
	uid, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return uint(uid), true
}
