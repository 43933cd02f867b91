package repository

import (
	"context"

	"marketdz/internal/domain/entity"
)

type UserRepository interface {
	// Create assigns the next id and writes the user at users/{id}.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int) (*entity.User, error)
	// GetByEmail lists the whole collection and filters client-side with a
	// case-insensitive comparison; the store has no index. O(n) per call.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]entity.User, error)
}
