package email

import (
	"context"
	"fmt"
	"net/smtp"

	"go-forex-backend/config"
)

// Message represents one email to be delivered.
type Message struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}

// Dispatcher is the interface that email providers implement. The abstraction
// allows swapping providers (Gmail SMTP, Brevo, SES, etc.) without changing
// the submission pipeline, and makes the pipeline testable.
type Dispatcher interface {
	// Send attempts delivery of a single message. One attempt, no retry.
	Send(ctx context.Context, msg Message) error
}

// EmailService delivers messages via SMTP
type EmailService struct {
	host     string
	port     string
	username string
	password string
}

// NewEmailService creates a new email service from the SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.EmailUser,
		password: cfg.EmailPass,
	}
}

// Send delivers the message over SMTP. A fresh connection is opened per call;
// fine for a low-volume marketing site, do not reuse under real load.
func (s *EmailService) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Construct MIME message
	raw := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		msg.From,
		msg.To,
		msg.Subject,
		msg.HTMLBody,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, msg.From, []string{msg.To}, raw); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
