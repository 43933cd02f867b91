package usecase

import (
	"context"

	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/repository"
	"marketdz/internal/domain/service"
	"marketdz/pkg/errors"
	"marketdz/pkg/logger"
)

type LocationUseCase struct {
	itemRepo repository.ItemRepository
	geo      *service.GeoService
	geocoder service.Geocoder
}

func NewLocationUseCase(itemRepo repository.ItemRepository, geo *service.GeoService, geocoder service.Geocoder) *LocationUseCase {
	return &LocationUseCase{
		itemRepo: itemRepo,
		geo:      geo,
		geocoder: geocoder,
	}
}

// SaveItemLocation stores the coordinate pair on the item and, when reverse
// geocoding yields a place name, routes it to the field the item's category
// reads: job listings get JobLocation, services get ServiceLocation, and
// everything gets its province resolved. Geocoding failures are logged and
// skipped; the coordinates still persist.
func (uc *LocationUseCase) SaveItemLocation(ctx context.Context, userID int, itemID int, location entity.Location) (*entity.Item, error) {
	item, err := uc.requireOwner(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}

	item.Latitude = &location.Latitude
	item.Longitude = &location.Longitude

	name, err := uc.geocoder.ReverseGeocode(ctx, location)
	if err != nil {
		logger.Warn("Reverse geocoding failed for item %d: %v", itemID, err)
	} else if name != "" {
		state := uc.geo.StateFromName(name)
		item.State = &state
		switch item.Category {
		case entity.CategoryJobs:
			item.JobLocation = name
		case entity.CategoryServices:
			item.ServiceLocation = name
		}
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItemLocation returns the item's coordinates, or nil when it has none.
func (uc *LocationUseCase) GetItemLocation(ctx context.Context, itemID int) (*entity.Location, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.HasLocation() {
		return nil, nil
	}
	return &entity.Location{Latitude: *item.Latitude, Longitude: *item.Longitude}, nil
}

func (uc *LocationUseCase) DeleteItemLocation(ctx context.Context, userID int, itemID int) (*entity.Item, error) {
	item, err := uc.requireOwner(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	item.Latitude = nil
	item.Longitude = nil
	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// FindNearby returns items within radiusKm of origin. Items without
// coordinates never match. A fetch failure degrades to an empty result.
func (uc *LocationUseCase) FindNearby(ctx context.Context, origin entity.Location, radiusKm float64) []entity.Item {
	items, err := uc.itemRepo.GetAll(ctx)
	if err != nil {
		logger.Error("Nearby search fetch failed: %v", err)
		return nil
	}
	return uc.geo.WithinRadius(items, origin, radiusKm)
}

// SortByDistance returns all located items ordered by distance from origin.
func (uc *LocationUseCase) SortByDistance(ctx context.Context, origin entity.Location) []entity.Item {
	items, err := uc.itemRepo.GetAll(ctx)
	if err != nil {
		logger.Error("Distance sort fetch failed: %v", err)
		return nil
	}
	return uc.geo.SortByDistance(items, origin)
}

func (uc *LocationUseCase) requireOwner(ctx context.Context, itemID, userID int) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.PostedByUserID != userID {
		return nil, errors.Forbidden("You don't have permission to modify this item", nil)
	}
	return item, nil
}
