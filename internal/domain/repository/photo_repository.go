package repository

import (
	"context"

	"marketdz/internal/domain/entity"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *entity.ItemPhoto) error
	GetByID(ctx context.Context, id int) (*entity.ItemPhoto, error)
	// ListByItem returns the item's photos ordered by display order.
	ListByItem(ctx context.Context, itemID int) ([]entity.ItemPhoto, error)
	Update(ctx context.Context, photo *entity.ItemPhoto) error
	Delete(ctx context.Context, id int) error
}
