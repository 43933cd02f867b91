// Package email holds verification mail delivery. Outside production the
// sender just logs; real delivery plugs in behind the same interface.
package email

import (
	"context"

	"marketdz/internal/domain/service"
	"marketdz/pkg/logger"
)

type logSender struct{}

func NewLogSender() service.EmailSender {
	return &logSender{}
}

func (s *logSender) SendVerificationEmail(ctx context.Context, to string, token string) error {
	logger.Info("Verification email for %s with token %s", to, token)
	return nil
}
