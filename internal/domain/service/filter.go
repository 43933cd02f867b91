package service

import (
	"sort"
	"strings"

	"marketdz/internal/domain/entity"
)

// FilterItems applies criteria as a conjunction over the materialized item
// collection: unset fields impose no constraint. Free text matches when the
// term is a case-insensitive substring of the title or description.
func FilterItems(items []entity.Item, criteria entity.FilterCriteria) []entity.Item {
	var result []entity.Item
	for _, item := range items {
		if criteria.MinPrice != nil && item.Price < *criteria.MinPrice {
			continue
		}
		if criteria.MaxPrice != nil && item.Price > *criteria.MaxPrice {
			continue
		}
		if criteria.State != nil && (item.State == nil || *item.State != *criteria.State) {
			continue
		}
		if len(criteria.Categories) > 0 && !containsCategory(criteria.Categories, item.Category) {
			continue
		}
		if criteria.SearchText != "" && !matchesText(item, criteria.SearchText) {
			continue
		}
		if criteria.DateFrom != nil && item.ListedDate.Before(*criteria.DateFrom) {
			continue
		}
		if criteria.DateTo != nil && item.ListedDate.After(*criteria.DateTo) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// SortItems orders items by the requested sort option. Relevance and unset
// options fall back to newest-first. The sort is stable: ties keep the
// underlying collection order so pagination stays deterministic.
func SortItems(items []entity.Item, sortBy entity.SortOption) []entity.Item {
	sorted := make([]entity.Item, len(items))
	copy(sorted, items)

	switch sortBy {
	case entity.SortPriceLowToHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case entity.SortPriceHighToLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case entity.SortDateOldest:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ListedDate.Before(sorted[j].ListedDate) })
	default:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ListedDate.After(sorted[j].ListedDate) })
	}
	return sorted
}

func containsCategory(categories []string, category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}

func matchesText(item entity.Item, term string) bool {
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(item.Title), lower) ||
		strings.Contains(strings.ToLower(item.Description), lower)
}
