package repository

import (
	"context"

	"marketdz/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	GetByID(ctx context.Context, id int) (*entity.Message, error)
	// ListForUser returns messages sent or received by the user, newest
	// first.
	ListForUser(ctx context.Context, userID int) ([]entity.Message, error)
	Update(ctx context.Context, message *entity.Message) error
	Delete(ctx context.Context, id int) error
}
