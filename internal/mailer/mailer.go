// Package mailer abstracts outbound email delivery. The service only ever
// hands a reset token to a Mailer; it never persists or logs the plaintext
// itself.
package mailer

import (
	"context"

	"github.com/rs/zerolog"
)

type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// LogMailer is the development stand-in for a real delivery provider: it
// "delivers" the reset token by printing it. Not for production use.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	m.log.Info().
		Str("email", email).
		Str("resetToken", token).
		Msg("password reset requested (development mailer)")
	return nil
}
