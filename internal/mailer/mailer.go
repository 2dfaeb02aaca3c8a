package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/waritphon/devconnect-api/internal/config"
)

// Mailer sends the welcome email for new registrations.
type Mailer struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

// New creates a Mailer from the SMTP configuration. It returns nil when no
// SMTP host is configured, which disables outbound mail.
func New(cfg config.SMTPConfig) *Mailer {
	if cfg.Host == "" {
		return nil
	}

	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendWelcome sends a plain-text greeting to a newly registered user.
func (m *Mailer) SendWelcome(name, email string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Welcome to DevConnect")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour DevConnect account is ready. Set up your developer profile to get started.\n", name))

	return m.dialer.DialAndSend(msg)
}
