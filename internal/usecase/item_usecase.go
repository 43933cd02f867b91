package usecase

import (
	"context"
	"time"

	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/repository"
	"marketdz/internal/domain/service"
	"marketdz/pkg/errors"
	"marketdz/pkg/logger"
)

type ItemUseCase struct {
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
}

func NewItemUseCase(itemRepo repository.ItemRepository, userRepo repository.UserRepository) *ItemUseCase {
	return &ItemUseCase{
		itemRepo: itemRepo,
		userRepo: userRepo,
	}
}

func (uc *ItemUseCase) Create(ctx context.Context, userID int, item *entity.Item) (*entity.Item, error) {
	if err := validateCoordinates(item); err != nil {
		return nil, err
	}
	item.PostedByUserID = userID
	item.PostedByUser = nil
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *ItemUseCase) GetByID(ctx context.Context, id int) (*entity.Item, error) {
	return uc.itemRepo.GetByID(ctx, id)
}

func (uc *ItemUseCase) GetByUserID(ctx context.Context, userID int) ([]entity.Item, error) {
	return uc.itemRepo.GetByUserID(ctx, userID)
}

func (uc *ItemUseCase) Update(ctx context.Context, userID int, item *entity.Item) (*entity.Item, error) {
	existing, err := uc.requireOwner(ctx, item.ID, userID)
	if err != nil {
		return nil, err
	}
	if err := validateCoordinates(item); err != nil {
		return nil, err
	}

	// Server-managed fields survive the overwrite.
	item.PostedByUserID = existing.PostedByUserID
	item.PostedByUser = existing.PostedByUser
	item.ListedDate = existing.ListedDate
	item.FavoritedByUsers = existing.FavoritedByUsers
	if item.Status == "" {
		item.Status = existing.Status
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *ItemUseCase) Delete(ctx context.Context, userID int, itemID int) error {
	if _, err := uc.requireOwner(ctx, itemID, userID); err != nil {
		return err
	}
	return uc.itemRepo.Delete(ctx, itemID)
}

// Search materializes the full collection, filters it in memory, and sorts
// it. A fetch failure degrades to an empty result so browsing never hard
// fails.
func (uc *ItemUseCase) Search(ctx context.Context, criteria entity.FilterCriteria) []entity.Item {
	items, err := uc.itemRepo.GetAll(ctx)
	if err != nil {
		logger.Error("Item search fetch failed: %v", err)
		return nil
	}
	return service.SortItems(service.FilterItems(items, criteria), criteria.SortBy)
}

// SetStatus applies the requested status without checking the current one;
// any transition is allowed. Moving to sold or rented stamps the end of the
// availability window.
func (uc *ItemUseCase) SetStatus(ctx context.Context, userID int, itemID int, status entity.ItemStatus) (*entity.Item, error) {
	item, err := uc.requireOwner(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}

	item.Status = status
	if status == entity.StatusSold || status == entity.StatusRented {
		now := time.Now().UTC()
		item.AvailableTo = &now
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// IsAvailable reports whether the item can still be responded to. A missing
// item is simply unavailable, not an error.
func (uc *ItemUseCase) IsAvailable(ctx context.Context, itemID int) bool {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return false
	}
	return item.Status == entity.StatusActive
}

func (uc *ItemUseCase) AddFavorite(ctx context.Context, userID int, itemID int) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	// The stored favorite entry never carries credentials.
	user.PasswordHash = ""
	return uc.itemRepo.AddFavorite(ctx, itemID, *user)
}

func (uc *ItemUseCase) RemoveFavorite(ctx context.Context, userID int, itemID int) error {
	return uc.itemRepo.RemoveFavorite(ctx, itemID, userID)
}

func (uc *ItemUseCase) ListFavorites(ctx context.Context, userID int) ([]entity.Item, error) {
	return uc.itemRepo.ListFavoritedBy(ctx, userID)
}

func (uc *ItemUseCase) RefreshPoster(ctx context.Context, itemID int) (*entity.Item, error) {
	return uc.itemRepo.RehydratePostedByUser(ctx, itemID)
}

func (uc *ItemUseCase) requireOwner(ctx context.Context, itemID, userID int) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.PostedByUserID != userID {
		return nil, errors.Forbidden("You don't have permission to modify this item", nil)
	}
	return item, nil
}

// validateCoordinates enforces that latitude and longitude are set together
// or not at all.
func validateCoordinates(item *entity.Item) error {
	if (item.Latitude == nil) != (item.Longitude == nil) {
		return errors.Validation("Latitude and longitude must be provided together")
	}
	return nil
}
