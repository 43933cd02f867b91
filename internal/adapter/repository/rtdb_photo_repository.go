package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/repository"
	"marketdz/internal/infrastructure/treedb"
	"marketdz/pkg/errors"
	"marketdz/pkg/logger"
)

const photosPath = "itemPhotos"

type rtdbPhotoRepository struct {
	db  *treedb.Client
	ids *idAllocator
}

func NewRTDBPhotoRepository(db *treedb.Client) repository.PhotoRepository {
	return &rtdbPhotoRepository{db: db, ids: newIDAllocator(db)}
}

func photoPath(id int) string {
	return photosPath + "/" + strconv.Itoa(id)
}

func (r *rtdbPhotoRepository) Create(ctx context.Context, photo *entity.ItemPhoto) error {
	id, err := r.ids.Next(ctx, photosPath)
	if err != nil {
		return errors.Internal("Failed to allocate photo id", err)
	}
	photo.ID = id
	if err := r.db.Set(ctx, photoPath(id), photo); err != nil {
		return errors.Internal("Failed to create photo", err)
	}
	return nil
}

func (r *rtdbPhotoRepository) GetByID(ctx context.Context, id int) (*entity.ItemPhoto, error) {
	var photo entity.ItemPhoto
	if err := r.db.Get(ctx, photoPath(id), &photo); err != nil {
		if err == treedb.ErrNotFound {
			return nil, errors.NotFound("Photo", err)
		}
		return nil, errors.Internal("Failed to get photo", err)
	}
	photo.ID = id
	return &photo, nil
}

func (r *rtdbPhotoRepository) ListByItem(ctx context.Context, itemID int) ([]entity.ItemPhoto, error) {
	entries, err := r.db.List(ctx, photosPath)
	if err != nil {
		return nil, errors.Internal("Failed to list photos", err)
	}
	var photos []entity.ItemPhoto
	for _, e := range entries {
		var photo entity.ItemPhoto
		if err := json.Unmarshal(e.Data, &photo); err != nil {
			logger.Warn("Skipping malformed photo record at key %s: %v", e.Key, err)
			continue
		}
		if photo.ItemID != itemID {
			continue
		}
		if id, err := strconv.Atoi(e.Key); err == nil {
			photo.ID = id
		}
		photos = append(photos, photo)
	}
	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].DisplayOrder < photos[j].DisplayOrder
	})
	return photos, nil
}

func (r *rtdbPhotoRepository) Update(ctx context.Context, photo *entity.ItemPhoto) error {
	if err := r.db.Set(ctx, photoPath(photo.ID), photo); err != nil {
		return errors.Internal("Failed to update photo", err)
	}
	return nil
}

func (r *rtdbPhotoRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.Delete(ctx, photoPath(id)); err != nil {
		return errors.Internal("Failed to delete photo", err)
	}
	return nil
}
