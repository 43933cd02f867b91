package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketdz/internal/domain/entity"
	"marketdz/pkg/errors"
)

func newPhotoUseCaseForTest(t *testing.T) (*PhotoUseCase, *testEnv, *entity.User, *entity.Item) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	item := env.createItem(t, owner, "Bike")
	return NewPhotoUseCase(env.photos, env.items, env.storage), env, owner, item
}

func addPhoto(t *testing.T, uc *PhotoUseCase, userID, itemID int) *entity.ItemPhoto {
	t.Helper()
	photo, err := uc.AddPhoto(context.Background(), userID, itemID, strings.NewReader("jpeg bytes"), "image/jpeg")
	assert.NoError(t, err)
	return photo
}

func TestFirstPhotoBecomesPrimary(t *testing.T) {
	uc, env, owner, item := newPhotoUseCaseForTest(t)
	ctx := context.Background()

	first := addPhoto(t, uc, owner.ID, item.ID)
	assert.True(t, first.IsPrimaryPhoto)
	assert.Equal(t, 0, first.DisplayOrder)

	second := addPhoto(t, uc, owner.ID, item.ID)
	assert.False(t, second.IsPrimaryPhoto)
	assert.Equal(t, 1, second.DisplayOrder)

	// The primary URL is mirrored onto the item.
	got, err := env.items.GetByID(ctx, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, first.PhotoUrl, got.PhotoUrl)
	assert.Equal(t, first.PhotoUrl, got.ImageUrl)
}

func TestDeletePrimaryPromotesNext(t *testing.T) {
	uc, env, owner, item := newPhotoUseCaseForTest(t)
	ctx := context.Background()

	first := addPhoto(t, uc, owner.ID, item.ID)
	second := addPhoto(t, uc, owner.ID, item.ID)

	assert.NoError(t, uc.DeletePhoto(ctx, owner.ID, first.ID))

	remaining, err := uc.ListPhotos(ctx, item.ID)
	assert.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.True(t, remaining[0].IsPrimaryPhoto)
	assert.Equal(t, second.ID, remaining[0].ID)

	got, err := env.items.GetByID(ctx, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, second.PhotoUrl, got.PhotoUrl)

	// The stored bytes are released too.
	assert.Contains(t, env.storage.deleted, first.PhotoUrl)
}

func TestDeleteLastPhotoClearsItemURL(t *testing.T) {
	uc, env, owner, item := newPhotoUseCaseForTest(t)
	ctx := context.Background()

	photo := addPhoto(t, uc, owner.ID, item.ID)
	assert.NoError(t, uc.DeletePhoto(ctx, owner.ID, photo.ID))

	got, err := env.items.GetByID(ctx, item.ID)
	assert.NoError(t, err)
	assert.Empty(t, got.PhotoUrl)
	assert.Empty(t, got.ImageUrl)
}

func TestAddPhotoAfterGapKeepsOrdersUnique(t *testing.T) {
	uc, _, owner, item := newPhotoUseCaseForTest(t)
	ctx := context.Background()

	addPhoto(t, uc, owner.ID, item.ID)
	middle := addPhoto(t, uc, owner.ID, item.ID)
	addPhoto(t, uc, owner.ID, item.ID)

	// Deleting the middle photo leaves orders {0, 2}.
	assert.NoError(t, uc.DeletePhoto(ctx, owner.ID, middle.ID))

	added := addPhoto(t, uc, owner.ID, item.ID)
	assert.Equal(t, 3, added.DisplayOrder)

	photos, err := uc.ListPhotos(ctx, item.ID)
	assert.NoError(t, err)
	seen := map[int]bool{}
	for _, p := range photos {
		assert.False(t, seen[p.DisplayOrder], "display order %d assigned twice", p.DisplayOrder)
		seen[p.DisplayOrder] = true
	}
}

func TestSetPrimaryPhotoDemotesOthers(t *testing.T) {
	uc, env, owner, item := newPhotoUseCaseForTest(t)
	ctx := context.Background()

	addPhoto(t, uc, owner.ID, item.ID)
	second := addPhoto(t, uc, owner.ID, item.ID)

	_, err := uc.SetPrimaryPhoto(ctx, owner.ID, second.ID)
	assert.NoError(t, err)

	photos, err := uc.ListPhotos(ctx, item.ID)
	assert.NoError(t, err)
	primaries := 0
	for _, p := range photos {
		if p.IsPrimaryPhoto {
			primaries++
			assert.Equal(t, second.ID, p.ID)
		}
	}
	assert.Equal(t, 1, primaries)

	got, err := env.items.GetByID(ctx, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, second.PhotoUrl, got.PhotoUrl)
}

func TestReorderPhotos(t *testing.T) {
	uc, _, owner, item := newPhotoUseCaseForTest(t)
	ctx := context.Background()

	a := addPhoto(t, uc, owner.ID, item.ID)
	b := addPhoto(t, uc, owner.ID, item.ID)
	c := addPhoto(t, uc, owner.ID, item.ID)

	reordered, err := uc.ReorderPhotos(ctx, owner.ID, item.ID, []int{c.ID, a.ID, b.ID})
	assert.NoError(t, err)
	assert.Equal(t, []int{c.ID, a.ID, b.ID}, []int{reordered[0].ID, reordered[1].ID, reordered[2].ID})
	for i, p := range reordered {
		assert.Equal(t, i, p.DisplayOrder)
	}

	// Partial or duplicated sequences are rejected.
	_, err = uc.ReorderPhotos(ctx, owner.ID, item.ID, []int{a.ID, b.ID})
	assert.True(t, errors.Is(err, "VALIDATION"))
	_, err = uc.ReorderPhotos(ctx, owner.ID, item.ID, []int{a.ID, a.ID, b.ID})
	assert.True(t, errors.Is(err, "VALIDATION"))
}

func TestPhotoOwnershipEnforced(t *testing.T) {
	uc, env, owner, item := newPhotoUseCaseForTest(t)
	ctx := context.Background()
	stranger := env.createUser(t, "stranger@example.com")

	photo := addPhoto(t, uc, owner.ID, item.ID)

	_, err := uc.AddPhoto(ctx, stranger.ID, item.ID, strings.NewReader("x"), "image/png")
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = uc.DeletePhoto(ctx, stranger.ID, photo.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
