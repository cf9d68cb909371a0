package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"gavel/internal/domain/contact"
	"gavel/internal/shared/config"
)

// SMTPEmailService forwards contact-form submissions to the configured
// inbox. Delivery is best-effort at the call site; failures are logged by
// the use case, never surfaced to the submitter.
type SMTPEmailService struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	return &SMTPEmailService{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

// IsConfigured reports whether delivery can be attempted.
func (s *SMTPEmailService) IsConfigured() bool {
	return s.cfg.IsConfigured()
}

// SendContactNotification mails a contact submission to the site inbox.
func (s *SMTPEmailService) SendContactNotification(msg *contact.Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", s.cfg.ContactInbox)
	m.SetHeader("Reply-To", msg.Email())
	m.SetHeader("Subject", fmt.Sprintf("[Contact] %s", msg.Subject()))
	m.SetBody("text/plain", fmt.Sprintf(
		"From: %s <%s>\n\n%s\n",
		msg.Name(), msg.Email(), msg.Body(),
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	return nil
}
