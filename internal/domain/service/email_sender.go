package service

import (
	"context"
)

// EmailSender delivers verification mail. Actual delivery is an external
// concern; implementations may be no-ops outside production.
type EmailSender interface {
	SendVerificationEmail(ctx context.Context, to string, token string) error
}
