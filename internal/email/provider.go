package email

import "github.com/kiri-yossy/bezihuri/internal/config"

// Provider sends transactional mail. Services depend on this interface so
// tests can swap in a recorder and development setups can run without SMTP.
type Provider interface {
	SendVerificationEmail(to, username, token string) error
}

// NewProvider picks the SMTP provider when mail is configured and falls back
// to the logging no-op otherwise.
func NewProvider(cfg *config.Config) Provider {
	if cfg.Email.SMTPHost == "" {
		return NewNoopProvider()
	}
	return NewSMTPProvider(cfg)
}
