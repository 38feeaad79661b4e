package mailer

import (
	"context"

	"review-catalog/pkg/utils"

	"go.uber.org/zap"
)

// Mailer delivers outbound mail. Callers treat delivery as fire and forget:
// errors are logged, never surfaced to the request that triggered the send.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New returns the SMTP mailer when a host is configured, otherwise a mailer
// that only logs (local development).
func New(config utils.EmailConfig, log *zap.Logger) Mailer {
	if config.Host == "" {
		log.Warn("SMTP host not configured, outbound mail will only be logged")
		return NewLogMailer(log)
	}
	return NewSMTPMailer(config, log)
}
