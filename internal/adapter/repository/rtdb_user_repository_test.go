package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketdz/internal/domain/entity"
	"marketdz/pkg/errors"
)

func TestUserRepositoryCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewRTDBUserRepository(newTestDB())
	ctx := context.Background()

	first := &entity.User{Email: "a@example.com", DisplayName: "A"}
	second := &entity.User{Email: "b@example.com", DisplayName: "B"}

	assert.NoError(t, repo.Create(ctx, first))
	assert.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestUserRepositoryGetByEmailIsCaseInsensitive(t *testing.T) {
	repo := NewRTDBUserRepository(newTestDB())
	ctx := context.Background()

	user := &entity.User{Email: "Amine@Example.com", DisplayName: "Amine"}
	assert.NoError(t, repo.Create(ctx, user))

	found, err := repo.GetByEmail(ctx, "amine@example.COM")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestUserRepositoryGetByEmailNotFound(t *testing.T) {
	repo := NewRTDBUserRepository(newTestDB())

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestUserRepositoryUpdateAndDelete(t *testing.T) {
	repo := NewRTDBUserRepository(newTestDB())
	ctx := context.Background()

	user := &entity.User{Email: "a@example.com", DisplayName: "A"}
	assert.NoError(t, repo.Create(ctx, user))

	user.DisplayName = "Updated"
	assert.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Updated", got.DisplayName)

	assert.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.GetByID(ctx, user.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
