package entity

import (
	"time"
)

type SortOption string

const (
	SortRelevance      SortOption = "relevance"
	SortPriceLowToHigh SortOption = "price_asc"
	SortPriceHighToLow SortOption = "price_desc"
	SortDateNewest     SortOption = "date_newest"
	SortDateOldest     SortOption = "date_oldest"
)

// FilterCriteria is a conjunction of optional predicates over the item
// collection. Unset fields impose no constraint.
type FilterCriteria struct {
	MinPrice   *float64
	MaxPrice   *float64
	State      *AlState
	Categories []string
	SearchText string
	DateFrom   *time.Time
	DateTo     *time.Time
	SortBy     SortOption
}
