package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketdz/internal/domain/entity"
)

func TestItemRepositoryCreateStampsDefaults(t *testing.T) {
	db := newTestDB()
	users := NewRTDBUserRepository(db)
	items := NewRTDBItemRepository(db, users)
	ctx := context.Background()

	user := &entity.User{Email: "seller@example.com", DisplayName: "Seller"}
	assert.NoError(t, users.Create(ctx, user))

	item := &entity.Item{Title: "Bike", Price: 120, Category: entity.CategoryForSale, PostedByUserID: user.ID}
	assert.NoError(t, items.Create(ctx, item))

	assert.Equal(t, 1, item.ID)
	assert.False(t, item.ListedDate.IsZero())
	assert.Equal(t, entity.StatusActive, item.Status)
	if assert.NotNil(t, item.PostedByUser) {
		assert.Equal(t, user.ID, item.PostedByUser.ID)
	}
}

func TestItemRepositoryPosterSnapshotIsPointInTime(t *testing.T) {
	db := newTestDB()
	users := NewRTDBUserRepository(db)
	items := NewRTDBItemRepository(db, users)
	ctx := context.Background()

	user := &entity.User{Email: "seller@example.com", DisplayName: "Old Name"}
	assert.NoError(t, users.Create(ctx, user))

	item := &entity.Item{Title: "Bike", Category: entity.CategoryForSale, PostedByUserID: user.ID}
	assert.NoError(t, items.Create(ctx, item))

	user.DisplayName = "New Name"
	assert.NoError(t, users.Update(ctx, user))

	got, err := items.GetByID(ctx, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Old Name", got.PostedByUser.DisplayName)

	refreshed, err := items.RehydratePostedByUser(ctx, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, "New Name", refreshed.PostedByUser.DisplayName)
}

func TestItemRepositoryPosterSnapshotCarriesNoCredentials(t *testing.T) {
	db := newTestDB()
	users := NewRTDBUserRepository(db)
	items := NewRTDBItemRepository(db, users)
	ctx := context.Background()

	user := &entity.User{Email: "seller@example.com", DisplayName: "Seller", PasswordHash: "$2a$10$notarealhash"}
	assert.NoError(t, users.Create(ctx, user))

	item := &entity.Item{Title: "Bike", Category: entity.CategoryForSale, PostedByUserID: user.ID}
	assert.NoError(t, items.Create(ctx, item))

	got, err := items.GetByID(ctx, item.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, got.PostedByUser) {
		assert.Empty(t, got.PostedByUser.PasswordHash)
	}

	// Rehydration pulls the current user record but still drops the hash.
	refreshed, err := items.RehydratePostedByUser(ctx, item.ID)
	assert.NoError(t, err)
	assert.Empty(t, refreshed.PostedByUser.PasswordHash)

	// The stored user record itself keeps its hash.
	stored, err := users.GetByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "$2a$10$notarealhash", stored.PasswordHash)
}

func TestItemRepositoryFavorites(t *testing.T) {
	db := newTestDB()
	users := NewRTDBUserRepository(db)
	items := NewRTDBItemRepository(db, users)
	ctx := context.Background()

	seller := &entity.User{Email: "seller@example.com", DisplayName: "Seller"}
	buyer := &entity.User{Email: "buyer@example.com", DisplayName: "Buyer"}
	assert.NoError(t, users.Create(ctx, seller))
	assert.NoError(t, users.Create(ctx, buyer))

	item := &entity.Item{Title: "Bike", Category: entity.CategoryForSale, PostedByUserID: seller.ID}
	assert.NoError(t, items.Create(ctx, item))

	assert.NoError(t, items.AddFavorite(ctx, item.ID, *buyer))
	// Favoriting twice stays a single entry.
	assert.NoError(t, items.AddFavorite(ctx, item.ID, *buyer))

	got, err := items.GetByID(ctx, item.ID)
	assert.NoError(t, err)
	assert.Len(t, got.FavoritedByUsers, 1)
	assert.True(t, got.IsFavoritedBy(buyer.ID))

	favorites, err := items.ListFavoritedBy(ctx, buyer.ID)
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)
	assert.Equal(t, item.ID, favorites[0].ID)

	assert.NoError(t, items.RemoveFavorite(ctx, item.ID, buyer.ID))
	got, err = items.GetByID(ctx, item.ID)
	assert.NoError(t, err)
	assert.False(t, got.IsFavoritedBy(buyer.ID))
}

func TestItemRepositoryGetByUserID(t *testing.T) {
	db := newTestDB()
	users := NewRTDBUserRepository(db)
	items := NewRTDBItemRepository(db, users)
	ctx := context.Background()

	a := &entity.User{Email: "a@example.com", DisplayName: "A"}
	b := &entity.User{Email: "b@example.com", DisplayName: "B"}
	assert.NoError(t, users.Create(ctx, a))
	assert.NoError(t, users.Create(ctx, b))

	assert.NoError(t, items.Create(ctx, &entity.Item{Title: "One", Category: entity.CategoryForSale, PostedByUserID: a.ID}))
	assert.NoError(t, items.Create(ctx, &entity.Item{Title: "Two", Category: entity.CategoryForSale, PostedByUserID: b.ID}))
	assert.NoError(t, items.Create(ctx, &entity.Item{Title: "Three", Category: entity.CategoryForSale, PostedByUserID: a.ID}))

	mine, err := items.GetByUserID(ctx, a.ID)
	assert.NoError(t, err)
	assert.Len(t, mine, 2)
}
