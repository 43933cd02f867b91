package repository

import (
	"context"

	"marketdz/internal/domain/entity"
)

type TokenRepository interface {
	// Create hydrates the token's User before writing; a missing user fails
	// the create.
	Create(ctx context.Context, token *entity.VerificationToken) error
	// GetByToken scans the collection for the opaque token string and
	// hydrates the User. A token whose user no longer exists is treated as
	// invalid and returns not-found.
	GetByToken(ctx context.Context, token string) (*entity.VerificationToken, error)
	Update(ctx context.Context, token *entity.VerificationToken) error
}
