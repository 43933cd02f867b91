package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/repository"
	"marketdz/internal/infrastructure/treedb"
	"marketdz/pkg/errors"
	"marketdz/pkg/logger"
)

const usersPath = "users"

type rtdbUserRepository struct {
	db  *treedb.Client
	ids *idAllocator
}

func NewRTDBUserRepository(db *treedb.Client) repository.UserRepository {
	return &rtdbUserRepository{db: db, ids: newIDAllocator(db)}
}

func userPath(id int) string {
	return usersPath + "/" + strconv.Itoa(id)
}

func (r *rtdbUserRepository) Create(ctx context.Context, user *entity.User) error {
	id, err := r.ids.Next(ctx, usersPath)
	if err != nil {
		return errors.Internal("Failed to allocate user id", err)
	}
	user.ID = id
	if err := r.db.Set(ctx, userPath(id), user); err != nil {
		return errors.Internal("Failed to create user", err)
	}
	return nil
}

func (r *rtdbUserRepository) GetByID(ctx context.Context, id int) (*entity.User, error) {
	var user entity.User
	if err := r.db.Get(ctx, userPath(id), &user); err != nil {
		if err == treedb.ErrNotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}
	user.ID = id
	return &user, nil
}

// GetByEmail scans the whole users collection. The store has no secondary
// index, so a case-insensitive comparison runs client-side.
func (r *rtdbUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *rtdbUserRepository) Update(ctx context.Context, user *entity.User) error {
	if err := r.db.Set(ctx, userPath(user.ID), user); err != nil {
		return errors.Internal("Failed to update user", err)
	}
	return nil
}

func (r *rtdbUserRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.Delete(ctx, userPath(id)); err != nil {
		return errors.Internal("Failed to delete user", err)
	}
	return nil
}

func (r *rtdbUserRepository) List(ctx context.Context) ([]entity.User, error) {
	entries, err := r.db.List(ctx, usersPath)
	if err != nil {
		return nil, errors.Internal("Failed to list users", err)
	}
	users := make([]entity.User, 0, len(entries))
	for _, e := range entries {
		var user entity.User
		if err := json.Unmarshal(e.Data, &user); err != nil {
			logger.Warn("Skipping malformed user record at key %s: %v", e.Key, err)
			continue
		}
		if id, err := strconv.Atoi(e.Key); err == nil {
			user.ID = id
		}
		users = append(users, user)
	}
	return users, nil
}
