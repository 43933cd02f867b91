package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketdz/internal/domain/entity"
	"marketdz/pkg/errors"
)

func newItemUseCaseForTest(t *testing.T) (*ItemUseCase, *testEnv) {
	env := newTestEnv(t)
	return NewItemUseCase(env.items, env.users), env
}

func TestItemCreateRejectsHalfCoordinatePair(t *testing.T) {
	uc, env := newItemUseCaseForTest(t)
	owner := env.createUser(t, "a@example.com")
	lat := 36.75

	_, err := uc.Create(context.Background(), owner.ID, &entity.Item{
		Title:    "Bike",
		Category: entity.CategoryForSale,
		Latitude: &lat,
	})
	assert.True(t, errors.Is(err, "VALIDATION"))
}

func TestItemUpdateRequiresOwnership(t *testing.T) {
	uc, env := newItemUseCaseForTest(t)
	ctx := context.Background()
	owner := env.createUser(t, "owner@example.com")
	stranger := env.createUser(t, "stranger@example.com")
	item := env.createItem(t, owner, "Bike")

	item.Title = "Stolen bike"
	_, err := uc.Update(ctx, stranger.ID, item)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = uc.Delete(ctx, stranger.ID, item.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestItemUpdatePreservesServerFields(t *testing.T) {
	uc, env := newItemUseCaseForTest(t)
	ctx := context.Background()
	owner := env.createUser(t, "owner@example.com")
	item := env.createItem(t, owner, "Bike")
	listed := item.ListedDate

	updated, err := uc.Update(ctx, owner.ID, &entity.Item{
		ID:       item.ID,
		Title:    "Better bike",
		Category: entity.CategoryForSale,
		Price:    150,
	})
	assert.NoError(t, err)
	assert.Equal(t, owner.ID, updated.PostedByUserID)
	assert.Equal(t, listed, updated.ListedDate)
	assert.Equal(t, entity.StatusActive, updated.Status)
}

func TestSetStatusStampsAvailabilityEnd(t *testing.T) {
	uc, env := newItemUseCaseForTest(t)
	ctx := context.Background()
	owner := env.createUser(t, "owner@example.com")
	item := env.createItem(t, owner, "Bike")

	sold, err := uc.SetStatus(ctx, owner.ID, item.ID, entity.StatusSold)
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusSold, sold.Status)
	assert.NotNil(t, sold.AvailableTo)

	// Any transition is allowed, including back to active.
	active, err := uc.SetStatus(ctx, owner.ID, item.ID, entity.StatusActive)
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusActive, active.Status)
}

func TestIsAvailable(t *testing.T) {
	uc, env := newItemUseCaseForTest(t)
	ctx := context.Background()
	owner := env.createUser(t, "owner@example.com")
	item := env.createItem(t, owner, "Bike")

	assert.True(t, uc.IsAvailable(ctx, item.ID))

	_, err := uc.SetStatus(ctx, owner.ID, item.ID, entity.StatusUnavailable)
	assert.NoError(t, err)
	assert.False(t, uc.IsAvailable(ctx, item.ID))

	// A missing item is simply unavailable.
	assert.False(t, uc.IsAvailable(ctx, 9999))
}

func TestRefreshPosterPicksUpProfileChanges(t *testing.T) {
	uc, env := newItemUseCaseForTest(t)
	ctx := context.Background()
	owner := env.createUser(t, "owner@example.com")
	item := env.createItem(t, owner, "Bike")

	owner.DisplayName = "Renamed"
	assert.NoError(t, env.users.Update(ctx, owner))

	// The stored snapshot is stale until explicitly refreshed.
	stale, err := uc.GetByID(ctx, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, "User owner@example.com", stale.PostedByUser.DisplayName)

	refreshed, err := uc.RefreshPoster(ctx, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", refreshed.PostedByUser.DisplayName)
}

func TestSearchFiltersAndSorts(t *testing.T) {
	uc, env := newItemUseCaseForTest(t)
	ctx := context.Background()
	owner := env.createUser(t, "owner@example.com")

	cheap := &entity.Item{Title: "Cheap bike", Category: entity.CategoryForSale, Price: 50, PostedByUserID: owner.ID}
	pricey := &entity.Item{Title: "Racing bike", Category: entity.CategoryForSale, Price: 900, PostedByUserID: owner.ID}
	other := &entity.Item{Title: "Apartment", Category: entity.CategoryForRent, Price: 40000, PostedByUserID: owner.ID}
	for _, item := range []*entity.Item{cheap, pricey, other} {
		assert.NoError(t, env.items.Create(ctx, item))
	}

	results := uc.Search(ctx, entity.FilterCriteria{
		SearchText: "bike",
		SortBy:     entity.SortPriceHighToLow,
	})
	assert.Len(t, results, 2)
	assert.Equal(t, pricey.ID, results[0].ID)
	assert.Equal(t, cheap.ID, results[1].ID)
}

func TestFavoriteFlow(t *testing.T) {
	uc, env := newItemUseCaseForTest(t)
	ctx := context.Background()
	owner := env.createUser(t, "owner@example.com")
	buyer := env.createUser(t, "buyer@example.com")
	item := env.createItem(t, owner, "Bike")

	assert.NoError(t, uc.AddFavorite(ctx, buyer.ID, item.ID))

	favorites, err := uc.ListFavorites(ctx, buyer.ID)
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)
	// The stored favorite entry carries no credentials.
	assert.Empty(t, favorites[0].FavoritedByUsers[0].PasswordHash)

	assert.NoError(t, uc.RemoveFavorite(ctx, buyer.ID, item.ID))
	favorites, err = uc.ListFavorites(ctx, buyer.ID)
	assert.NoError(t, err)
	assert.Empty(t, favorites)
}
