package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/kiri-yossy/bezihuri/internal/config"
	"github.com/kiri-yossy/bezihuri/internal/logger"
)

type SMTPProvider struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
	verifyURL string
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{
		dialer: gomail.NewDialer(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUsername,
			cfg.Email.SMTPPassword,
		),
		fromEmail: cfg.Email.FromEmail,
		fromName:  cfg.Email.FromName,
		verifyURL: cfg.Email.VerifyURL,
	}
}

func (p *SMTPProvider) SendVerificationEmail(to, username, token string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.fromEmail, p.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", verificationSubject)
	m.SetBody("text/html", verificationBody(username, p.verifyURL, token))

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	logger.Info("verification email sent", "to", to)
	return nil
}
