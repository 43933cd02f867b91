package repository

import (
	"context"

	"marketdz/internal/domain/entity"
)

type BlockRepository interface {
	Create(ctx context.Context, block *entity.BlockedUser) error
	// Find returns the active block for the pair, or nil.
	Find(ctx context.Context, userID, blockedUserID int) (*entity.BlockedUser, error)
	Delete(ctx context.Context, id int) error
	ListByUser(ctx context.Context, userID int) ([]entity.BlockedUser, error)
}
