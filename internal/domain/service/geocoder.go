package service

import (
	"context"

	"marketdz/internal/domain/entity"
)

// Geocoder resolves between addresses and coordinates. Both directions may
// legitimately find nothing, which is reported as a nil result, not an error.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*entity.Location, error)
	ReverseGeocode(ctx context.Context, location entity.Location) (string, error)
}
