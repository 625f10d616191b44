package email

import "github.com/kiri-yossy/bezihuri/internal/logger"

// NoopProvider logs instead of sending. Used in development and tests where
// no SMTP server is configured.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) SendVerificationEmail(to, username, token string) error {
	logger.Info("verification email suppressed (no SMTP configured)",
		"to", to, "username", username, "token", token)
	return nil
}
