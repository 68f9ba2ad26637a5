package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"userhub/internal/service"
)

// EmailHandler handles the transactional email endpoint.
type EmailHandler struct {
	emailService service.EmailService
}

// NewEmailHandler creates a new email handler.
func NewEmailHandler(emailService service.EmailService) *EmailHandler {
	return &EmailHandler{emailService: emailService}
}

// SendEmailRequest represents an outbound mail request.
type SendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendEmail godoc
// @Summary Send a transactional email
// @Tags email
// @Accept json
// @Produce json
// @Param request body SendEmailRequest true "Message"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /send-email [post]
func (h *EmailHandler) SendEmail(c echo.Context) error {
	var req SendEmailRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if req.To == "" || req.Subject == "" || req.Body == "" {
		return respondError(c, http.StatusBadRequest, "missing required fields: to, subject, body")
	}

	if err := h.emailService.SendEmail(c.Request().Context(), req.To, req.Subject, req.Body); err != nil {
		return respondDomainError(c, err)
	}
	return respondSuccess(c, http.StatusOK, "Email sent successfully", nil)
}
