package email

import (
	"jobportal_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPSender sends mail through the configured SMTP relay using gomail.
type SMTPSender struct {
	cfg *config.Config
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(email *Email) error {
	m := gomail.NewMessage()
	if s.cfg.Email.FromName != "" {
		m.SetAddressHeader("From", s.cfg.Email.FromEmail, s.cfg.Email.FromName)
	} else {
		m.SetHeader("From", s.cfg.Email.FromEmail)
	}
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUsername,
		s.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}
