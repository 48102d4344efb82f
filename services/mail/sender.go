package mail

import (
	"fmt"

	"growlife/config"

	gomail "gopkg.in/gomail.v2"
)

// Sender delivers a single HTML email.
type Sender interface {
	Send(to, subject, html string) error
}

// SMTPSender delivers mail over SMTP using the configured account.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender builds a sender from the loaded configuration.
func NewSMTPSender() *SMTPSender {
	cfg := config.AppConfig
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass),
		from:   cfg.EmailUser,
	}
}

// Send delivers one message, blocking until the SMTP handshake completes.
func (s *SMTPSender) Send(to, subject, html string) error {
	if to == "" || subject == "" || html == "" {
		return fmt.Errorf("email sending failed: missing recipient, subject, or content")
	}
	if s.from == "" {
		return fmt.Errorf("email sending failed: email credentials not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("GrowLife Insurance <%s>", s.from))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
