package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"freelance-job-tracker/internal/config"
	"freelance-job-tracker/internal/logger"
)

// Mailer delivers password-reset tokens out of the HTTP response.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// LogMailer writes the token to the server log instead of sending email.
// It is the default collaborator; deployments that want real delivery
// configure SMTP and get an SMTPMailer instead.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, email, token string) error {
	logger.Info("Password reset token issued",
		zap.String("email", email),
		zap.String("token", token),
	)
	return nil
}

type SMTPMailer struct {
	cfg *config.SMTPConfig
}

func NewSMTPMailer(cfg *config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendPasswordReset(_ context.Context, email, token string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)

	msg := []byte("To: " + email + "\r\n" +
		"Subject: Password reset\r\n" +
		"\r\n" +
		"Use this token to reset your password (valid for 1 hour): " + token + "\r\n")

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{email}, msg); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

// FromConfig picks the SMTP mailer when a host is configured, the log stub
// otherwise.
func FromConfig(cfg *config.Config) Mailer {
	if cfg.SMTP.Host != "" {
		return NewSMTPMailer(&cfg.SMTP)
	}
	return NewLogMailer()
}
