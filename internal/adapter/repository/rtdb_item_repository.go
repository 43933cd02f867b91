package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/repository"
	"marketdz/internal/infrastructure/treedb"
	"marketdz/pkg/errors"
	"marketdz/pkg/logger"
)

const itemsPath = "items"

type rtdbItemRepository struct {
	db    *treedb.Client
	users repository.UserRepository
	ids   *idAllocator
}

func NewRTDBItemRepository(db *treedb.Client, users repository.UserRepository) repository.ItemRepository {
	return &rtdbItemRepository{db: db, users: users, ids: newIDAllocator(db)}
}

func itemPath(id int) string {
	return itemsPath + "/" + strconv.Itoa(id)
}

func (r *rtdbItemRepository) Create(ctx context.Context, item *entity.Item) error {
	id, err := r.ids.Next(ctx, itemsPath)
	if err != nil {
		return errors.Internal("Failed to allocate item id", err)
	}
	item.ID = id

	if item.ListedDate.IsZero() {
		item.ListedDate = time.Now().UTC()
	}
	if item.Status == "" {
		item.Status = entity.StatusActive
	}

	// Embed the poster so reads never need a second lookup. Items are
	// publicly readable, so the stored snapshot carries no credentials.
	if item.PostedByUser == nil && item.PostedByUserID != 0 {
		user, err := r.users.GetByID(ctx, item.PostedByUserID)
		if err != nil {
			return errors.BadRequest("Posting user does not exist", err)
		}
		item.PostedByUser = user
	}
	if item.PostedByUser != nil {
		snapshot := *item.PostedByUser
		snapshot.PasswordHash = ""
		item.PostedByUser = &snapshot
	}

	if err := r.db.Set(ctx, itemPath(id), item); err != nil {
		return errors.Internal("Failed to create item", err)
	}
	return nil
}

func (r *rtdbItemRepository) GetByID(ctx context.Context, id int) (*entity.Item, error) {
	var item entity.Item
	if err := r.db.Get(ctx, itemPath(id), &item); err != nil {
		if err == treedb.ErrNotFound {
			return nil, errors.NotFound("Item", err)
		}
		return nil, errors.Internal("Failed to get item", err)
	}
	item.ID = id
	return &item, nil
}

func (r *rtdbItemRepository) GetAll(ctx context.Context) ([]entity.Item, error) {
	entries, err := r.db.List(ctx, itemsPath)
	if err != nil {
		return nil, errors.Internal("Failed to list items", err)
	}
	items := make([]entity.Item, 0, len(entries))
	for _, e := range entries {
		var item entity.Item
		if err := json.Unmarshal(e.Data, &item); err != nil {
			logger.Warn("Skipping malformed item record at key %s: %v", e.Key, err)
			continue
		}
		if id, err := strconv.Atoi(e.Key); err == nil {
			item.ID = id
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *rtdbItemRepository) GetByUserID(ctx context.Context, userID int) ([]entity.Item, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var items []entity.Item
	for _, item := range all {
		if item.PostedByUserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *rtdbItemRepository) Update(ctx context.Context, item *entity.Item) error {
	if err := r.db.Set(ctx, itemPath(item.ID), item); err != nil {
		return errors.Internal("Failed to update item", err)
	}
	return nil
}

func (r *rtdbItemRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.Delete(ctx, itemPath(id)); err != nil {
		return errors.Internal("Failed to delete item", err)
	}
	return nil
}

// RehydratePostedByUser replaces the embedded poster snapshot with the
// current user record and persists the result.
func (r *rtdbItemRepository) RehydratePostedByUser(ctx context.Context, itemID int) (*entity.Item, error) {
	item, err := r.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	user, err := r.users.GetByID(ctx, item.PostedByUserID)
	if err != nil {
		return nil, err
	}
	snapshot := *user
	snapshot.PasswordHash = ""
	item.PostedByUser = &snapshot
	if err := r.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// AddFavorite appends the user to the item's favorite list under a
// compare-and-swap so concurrent favoriters do not lose each other's entry.
// Favoriting twice is a no-op.
func (r *rtdbItemRepository) AddFavorite(ctx context.Context, itemID int, user entity.User) error {
	err := r.db.Txn(ctx, itemPath(itemID), func(current json.RawMessage) (interface{}, error) {
		item, err := decodeItemForTxn(current, itemID)
		if err != nil {
			return nil, err
		}
		if item.IsFavoritedBy(user.ID) {
			return item, nil
		}
		item.FavoritedByUsers = append(item.FavoritedByUsers, user)
		return item, nil
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return appErr
		}
		return errors.Internal("Failed to add favorite", err)
	}
	return nil
}

func (r *rtdbItemRepository) RemoveFavorite(ctx context.Context, itemID int, userID int) error {
	err := r.db.Txn(ctx, itemPath(itemID), func(current json.RawMessage) (interface{}, error) {
		item, err := decodeItemForTxn(current, itemID)
		if err != nil {
			return nil, err
		}
		kept := item.FavoritedByUsers[:0]
		for _, u := range item.FavoritedByUsers {
			if u.ID != userID {
				kept = append(kept, u)
			}
		}
		item.FavoritedByUsers = kept
		return item, nil
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return appErr
		}
		return errors.Internal("Failed to remove favorite", err)
	}
	return nil
}

func (r *rtdbItemRepository) ListFavoritedBy(ctx context.Context, userID int) ([]entity.Item, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var items []entity.Item
	for _, item := range all {
		if item.IsFavoritedBy(userID) {
			items = append(items, item)
		}
	}
	return items, nil
}

func decodeItemForTxn(current json.RawMessage, itemID int) (*entity.Item, error) {
	if len(current) == 0 || string(current) == "null" {
		return nil, errors.NotFound("Item", nil)
	}
	var item entity.Item
	if err := json.Unmarshal(current, &item); err != nil {
		return nil, err
	}
	item.ID = itemID
	return &item, nil
}
