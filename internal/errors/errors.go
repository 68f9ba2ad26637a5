package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no user exists for the given id.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrInvalidCredentials is returned on login failure. Unknown email and
	// wrong password map to this same error so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrPasswordsRequired is returned when old or new password is missing.
	ErrPasswordsRequired = errors.New("both old and new passwords are required")
	// ErrConfirmRequired is returned when confirm password is missing.
	ErrConfirmRequired = errors.New("confirm password required")
	// ErrOldPasswordIncorrect is returned when the old password does not verify.
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")
	// ErrPasswordMismatch is returned when new and confirm passwords differ.
	ErrPasswordMismatch = errors.New("new password and confirm password don't match")
	// ErrMailSend is returned when the mail transport fails.
	ErrMailSend = errors.New("failed to send email")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_IN_USE")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrPasswordsRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORDS_REQUIRED")
	case errors.Is(err, ErrConfirmRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CONFIRM_REQUIRED")
	case errors.Is(err, ErrOldPasswordIncorrect):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "OLD_PASSWORD_INCORRECT")
	case errors.Is(err, ErrPasswordMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_MISMATCH")
	case errors.Is(err, ErrMailSend):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "MAIL_SEND_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
