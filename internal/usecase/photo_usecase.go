package usecase

import (
	"context"
	"io"
	"time"

	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/repository"
	"marketdz/internal/domain/service"
	"marketdz/pkg/errors"
	"marketdz/pkg/logger"
)

type PhotoUseCase struct {
	photoRepo repository.PhotoRepository
	itemRepo  repository.ItemRepository
	storage   service.MediaStorage
}

func NewPhotoUseCase(photoRepo repository.PhotoRepository, itemRepo repository.ItemRepository, storage service.MediaStorage) *PhotoUseCase {
	return &PhotoUseCase{
		photoRepo: photoRepo,
		itemRepo:  itemRepo,
		storage:   storage,
	}
}

// AddPhoto uploads the image bytes and records the photo. The first photo of
// an item becomes its primary; the primary's URL is mirrored onto the item
// record for single-read listings.
func (uc *PhotoUseCase) AddPhoto(ctx context.Context, userID int, itemID int, file io.Reader, contentType string) (*entity.ItemPhoto, error) {
	item, err := uc.requireOwner(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}

	url, err := uc.storage.UploadImage(ctx, file, contentType)
	if err != nil {
		return nil, errors.Internal("Failed to upload image", err)
	}

	existing, err := uc.photoRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	// Orders can be sparse after deletions; max+1 keeps the new photo last
	// without colliding with a surviving order.
	nextOrder := 0
	for _, p := range existing {
		if p.DisplayOrder >= nextOrder {
			nextOrder = p.DisplayOrder + 1
		}
	}

	photo := &entity.ItemPhoto{
		ItemID:         itemID,
		PhotoUrl:       url,
		IsPrimaryPhoto: len(existing) == 0,
		UploadedAt:     time.Now().UTC(),
		DisplayOrder:   nextOrder,
	}
	if err := uc.photoRepo.Create(ctx, photo); err != nil {
		return nil, err
	}

	if photo.IsPrimaryPhoto {
		if err := uc.mirrorPrimary(ctx, item, url); err != nil {
			return nil, err
		}
	}
	return photo, nil
}

// DeletePhoto removes the photo and its stored bytes. Deleting the primary
// promotes the lowest remaining display order; deleting the last photo clears
// the item's mirrored URL.
func (uc *PhotoUseCase) DeletePhoto(ctx context.Context, userID int, photoID int) error {
	photo, err := uc.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}
	item, err := uc.requireOwner(ctx, photo.ItemID, userID)
	if err != nil {
		return err
	}

	if err := uc.photoRepo.Delete(ctx, photoID); err != nil {
		return err
	}
	if err := uc.storage.DeleteImage(ctx, photo.PhotoUrl); err != nil {
		// The record is already gone; orphaned bytes are not worth failing
		// the caller over.
		logger.Warn("Failed to delete stored image %s: %v", photo.PhotoUrl, err)
	}

	remaining, err := uc.photoRepo.ListByItem(ctx, photo.ItemID)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		return uc.mirrorPrimary(ctx, item, "")
	}
	if photo.IsPrimaryPhoto {
		promoted := remaining[0]
		promoted.IsPrimaryPhoto = true
		if err := uc.photoRepo.Update(ctx, &promoted); err != nil {
			return err
		}
		return uc.mirrorPrimary(ctx, item, promoted.PhotoUrl)
	}
	return nil
}

// SetPrimaryPhoto makes the given photo the item's primary and demotes the
// rest.
func (uc *PhotoUseCase) SetPrimaryPhoto(ctx context.Context, userID int, photoID int) (*entity.ItemPhoto, error) {
	photo, err := uc.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	item, err := uc.requireOwner(ctx, photo.ItemID, userID)
	if err != nil {
		return nil, err
	}

	photos, err := uc.photoRepo.ListByItem(ctx, photo.ItemID)
	if err != nil {
		return nil, err
	}
	for i := range photos {
		isPrimary := photos[i].ID == photoID
		if photos[i].IsPrimaryPhoto == isPrimary {
			continue
		}
		photos[i].IsPrimaryPhoto = isPrimary
		if err := uc.photoRepo.Update(ctx, &photos[i]); err != nil {
			return nil, err
		}
	}
	if err := uc.mirrorPrimary(ctx, item, photo.PhotoUrl); err != nil {
		return nil, err
	}
	photo.IsPrimaryPhoto = true
	return photo, nil
}

// ReorderPhotos rewrites display orders to match the given photo id sequence,
// densely from zero. Every photo of the item must appear exactly once.
func (uc *PhotoUseCase) ReorderPhotos(ctx context.Context, userID int, itemID int, orderedIDs []int) ([]entity.ItemPhoto, error) {
	if _, err := uc.requireOwner(ctx, itemID, userID); err != nil {
		return nil, err
	}

	photos, err := uc.photoRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if len(orderedIDs) != len(photos) {
		return nil, errors.Validation("Reorder must include every photo of the item exactly once")
	}

	byID := make(map[int]*entity.ItemPhoto, len(photos))
	for i := range photos {
		byID[photos[i].ID] = &photos[i]
	}

	result := make([]entity.ItemPhoto, 0, len(orderedIDs))
	for order, id := range orderedIDs {
		photo, ok := byID[id]
		if !ok {
			return nil, errors.Validation("Reorder must include every photo of the item exactly once")
		}
		delete(byID, id)
		photo.DisplayOrder = order
		if err := uc.photoRepo.Update(ctx, photo); err != nil {
			return nil, err
		}
		result = append(result, *photo)
	}
	return result, nil
}

func (uc *PhotoUseCase) ListPhotos(ctx context.Context, itemID int) ([]entity.ItemPhoto, error) {
	return uc.photoRepo.ListByItem(ctx, itemID)
}

// mirrorPrimary keeps the item's denormalized photo URLs in sync with the
// primary photo.
func (uc *PhotoUseCase) mirrorPrimary(ctx context.Context, item *entity.Item, url string) error {
	item.PhotoUrl = url
	item.ImageUrl = url
	return uc.itemRepo.Update(ctx, item)
}

func (uc *PhotoUseCase) requireOwner(ctx context.Context, itemID, userID int) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.PostedByUserID != userID {
		return nil, errors.Forbidden("You don't have permission to modify this item's photos", nil)
	}
	return item, nil
}
