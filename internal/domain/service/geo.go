package service

import (
	"math"
	"sort"
	"strings"

	"marketdz/internal/domain/entity"
)

const earthRadiusKm = 6371

// GeoService computes great-circle distances and resolves free-text location
// names to provinces. All computation is in memory; the store cannot run
// spatial queries.
type GeoService struct{}

func NewGeoService() *GeoService {
	return &GeoService{}
}

// Distance returns the great-circle distance between two points in
// kilometers, using the haversine formula.
func (s *GeoService) Distance(a, b entity.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lon1 := a.Longitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lon2 := b.Longitude * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// WithinRadius keeps items whose distance from origin is at most radiusKm.
// Items without a complete coordinate pair are excluded, never treated as
// distance zero or infinity.
func (s *GeoService) WithinRadius(items []entity.Item, origin entity.Location, radiusKm float64) []entity.Item {
	var result []entity.Item
	for _, item := range items {
		if !item.HasLocation() {
			continue
		}
		point := entity.Location{Latitude: *item.Latitude, Longitude: *item.Longitude}
		if s.Distance(origin, point) <= radiusKm {
			result = append(result, item)
		}
	}
	return result
}

// SortByDistance returns the coordinate-complete subset of items ordered by
// ascending distance from origin. Items without coordinates are excluded
// rather than appended at the end.
func (s *GeoService) SortByDistance(items []entity.Item, origin entity.Location) []entity.Item {
	type ranked struct {
		item     entity.Item
		distance float64
	}

	var withDistance []ranked
	for _, item := range items {
		if !item.HasLocation() {
			continue
		}
		point := entity.Location{Latitude: *item.Latitude, Longitude: *item.Longitude}
		withDistance = append(withDistance, ranked{item: item, distance: s.Distance(origin, point)})
	}

	sort.SliceStable(withDistance, func(i, j int) bool {
		return withDistance[i].distance < withDistance[j].distance
	})

	result := make([]entity.Item, len(withDistance))
	for i, r := range withDistance {
		result[i] = r.item
	}
	return result
}

// stateScanOrder lists the provinces alphabetically. Scan order decides the
// winner when a name mentions more than one province.
var stateScanOrder = func() []entity.AlState {
	states := make([]entity.AlState, len(entity.AllStates))
	copy(states, entity.AllStates)
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}()

// StateFromName resolves a free-text location name to a province by
// case-insensitive substring match, accepting space- and underscore-delimited
// spellings plus the English "Algiers". No match falls back to the capital;
// this is a heuristic, not an error path.
func (s *GeoService) StateFromName(name string) entity.AlState {
	lower := strings.ToLower(name)
	for _, state := range stateScanOrder {
		underscored := strings.ToLower(string(state))
		spaced := strings.ReplaceAll(underscored, "_", " ")
		if strings.Contains(lower, underscored) || strings.Contains(lower, spaced) {
			return state
		}
		if state == entity.StateAlger && strings.Contains(lower, "algiers") {
			return state
		}
	}
	return entity.StateAlger
}
