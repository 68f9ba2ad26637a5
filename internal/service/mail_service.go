package service

import (
	"context"
	"log"

	apperrors "userhub/internal/errors"
	"userhub/internal/mail"
)

// EmailService sends transactional email.
type EmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type emailService struct {
	mailer mail.Mailer
}

// NewEmailService builds an EmailService over the given transport.
func NewEmailService(mailer mail.Mailer) EmailService {
	return &emailService{mailer: mailer}
}

// SendEmail delivers a message synchronously. Transport failures are logged
// and surfaced as ErrMailSend without the transport detail.
func (s *emailService) SendEmail(ctx context.Context, to, subject, body string) error {
	if err := s.mailer.Send(ctx, to, subject, body); err != nil {
		log.Printf("send email to %s: %v", to, err)
		return apperrors.ErrMailSend
	}
	return nil
}
