package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "userhub/internal/errors"
)

// Envelope is the standard response body: {status, message, data?}.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respondSuccess(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, Envelope{Status: "success", Message: message, Data: data})
}

func respondError(c echo.Context, code int, message string) error {
	return c.JSON(code, Envelope{Status: "error", Message: message})
}

// respondDomainError renders a domain error through the taxonomy mapping.
func respondDomainError(c echo.Context, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	return respondError(c, he.StatusCode, he.Message)
}

// validationMessage flattens validator errors into field-level detail,
// e.g. "email: failed on email; name: failed on required".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s: failed on %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}

// HTTPErrorHandler renders errors raised outside handler bodies (unknown
// routes, method mismatches, JWT middleware rejections) into the envelope.
// Every 401 collapses to one opaque message so token verification failures
// are indistinguishable from each other.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	}
	if code == http.StatusUnauthorized {
		message = "missing or invalid token"
	}

	_ = respondError(c, code, message)
}
