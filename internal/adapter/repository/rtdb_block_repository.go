package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/repository"
	"marketdz/internal/infrastructure/treedb"
	"marketdz/pkg/errors"
	"marketdz/pkg/logger"
)

const blocksPath = "blockedUsers"

type rtdbBlockRepository struct {
	db  *treedb.Client
	ids *idAllocator
}

func NewRTDBBlockRepository(db *treedb.Client) repository.BlockRepository {
	return &rtdbBlockRepository{db: db, ids: newIDAllocator(db)}
}

func (r *rtdbBlockRepository) Create(ctx context.Context, block *entity.BlockedUser) error {
	id, err := r.ids.Next(ctx, blocksPath)
	if err != nil {
		return errors.Internal("Failed to allocate block id", err)
	}
	block.ID = id
	if err := r.db.Set(ctx, blocksPath+"/"+strconv.Itoa(id), block); err != nil {
		return errors.Internal("Failed to create block", err)
	}
	return nil
}

func (r *rtdbBlockRepository) Find(ctx context.Context, userID, blockedUserID int) (*entity.BlockedUser, error) {
	all, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].UserID == userID && all[i].BlockedUserID == blockedUserID {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *rtdbBlockRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.Delete(ctx, blocksPath+"/"+strconv.Itoa(id)); err != nil {
		return errors.Internal("Failed to delete block", err)
	}
	return nil
}

func (r *rtdbBlockRepository) ListByUser(ctx context.Context, userID int) ([]entity.BlockedUser, error) {
	all, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	var blocks []entity.BlockedUser
	for _, block := range all {
		if block.UserID == userID {
			blocks = append(blocks, block)
		}
	}
	return blocks, nil
}

func (r *rtdbBlockRepository) list(ctx context.Context) ([]entity.BlockedUser, error) {
	entries, err := r.db.List(ctx, blocksPath)
	if err != nil {
		return nil, errors.Internal("Failed to list blocks", err)
	}
	blocks := make([]entity.BlockedUser, 0, len(entries))
	for _, e := range entries {
		var block entity.BlockedUser
		if err := json.Unmarshal(e.Data, &block); err != nil {
			logger.Warn("Skipping malformed block record at key %s: %v", e.Key, err)
			continue
		}
		if id, err := strconv.Atoi(e.Key); err == nil {
			block.ID = id
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}
