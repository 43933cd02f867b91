package repository

import (
	"context"

	"marketdz/internal/domain/entity"
)

type ItemRepository interface {
	// Create assigns the next id, stamps ListedDate if unset, snapshots the
	// posting user into the record, and writes it at items/{id}.
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id int) (*entity.Item, error)
	GetAll(ctx context.Context) ([]entity.Item, error)
	GetByUserID(ctx context.Context, userID int) ([]entity.Item, error)
	// Update is a full-record overwrite.
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id int) error
	// RehydratePostedByUser refreshes the embedded user snapshot from the
	// users collection, for callers that need current data.
	RehydratePostedByUser(ctx context.Context, itemID int) (*entity.Item, error)

	// Favorites live inline on the item record.
	AddFavorite(ctx context.Context, itemID int, user entity.User) error
	RemoveFavorite(ctx context.Context, itemID int, userID int) error
	ListFavoritedBy(ctx context.Context, userID int) ([]entity.Item, error)
}
