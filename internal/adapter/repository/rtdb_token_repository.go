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

const tokensPath = "verificationTokens"

type rtdbTokenRepository struct {
	db    *treedb.Client
	users repository.UserRepository
	ids   *idAllocator
}

func NewRTDBTokenRepository(db *treedb.Client, users repository.UserRepository) repository.TokenRepository {
	return &rtdbTokenRepository{db: db, users: users, ids: newIDAllocator(db)}
}

func tokenPath(id int) string {
	return tokensPath + "/" + strconv.Itoa(id)
}

func (r *rtdbTokenRepository) Create(ctx context.Context, token *entity.VerificationToken) error {
	user, err := r.users.GetByID(ctx, token.UserID)
	if err != nil {
		return errors.BadRequest("Token user does not exist", err)
	}
	token.User = user

	id, err := r.ids.Next(ctx, tokensPath)
	if err != nil {
		return errors.Internal("Failed to allocate token id", err)
	}
	token.ID = id
	if err := r.db.Set(ctx, tokenPath(id), token); err != nil {
		return errors.Internal("Failed to create verification token", err)
	}
	return nil
}

// GetByToken scans the collection for the opaque token string. The stored
// user snapshot is replaced with the current record; a token whose user has
// since been deleted is invalid.
func (r *rtdbTokenRepository) GetByToken(ctx context.Context, token string) (*entity.VerificationToken, error) {
	entries, err := r.db.List(ctx, tokensPath)
	if err != nil {
		return nil, errors.Internal("Failed to list verification tokens", err)
	}
	for _, e := range entries {
		var vt entity.VerificationToken
		if err := json.Unmarshal(e.Data, &vt); err != nil {
			logger.Warn("Skipping malformed token record at key %s: %v", e.Key, err)
			continue
		}
		if vt.Token != token {
			continue
		}
		if id, err := strconv.Atoi(e.Key); err == nil {
			vt.ID = id
		}
		user, err := r.users.GetByID(ctx, vt.UserID)
		if err != nil {
			return nil, errors.NotFound("Verification token", err)
		}
		vt.User = user
		return &vt, nil
	}
	return nil, errors.NotFound("Verification token", nil)
}

func (r *rtdbTokenRepository) Update(ctx context.Context, token *entity.VerificationToken) error {
	if err := r.db.Set(ctx, tokenPath(token.ID), token); err != nil {
		return errors.Internal("Failed to update verification token", err)
	}
	return nil
}
