package catalog

import (
	"sort"
	"strconv"
	"strings"

	"quickbite/internal/domain"
)

// Filter narrows the listing by a free-text query and a category. The
// query matches restaurant names, cuisine tags and menu item names; the
// category matches menu item categories or cuisine tags. Empty arguments
// match everything.
func Filter(restaurants []domain.Restaurant, query, category string) []domain.Restaurant {
	query = strings.ToLower(strings.TrimSpace(query))

	matched := []domain.Restaurant{}
	for _, r := range restaurants {
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		if category != "" && !matchesCategory(r, category) {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// SortBy orders a copy of the listing. Supported keys: "rating" (desc),
// "distance" (asc), "delivery_time" (asc, by the lower bound of the
// textual range). Unknown keys leave the seeded order untouched.
func SortBy(restaurants []domain.Restaurant, key string) []domain.Restaurant {
	sorted := append([]domain.Restaurant(nil), restaurants...)
	switch key {
	case "rating":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case "distance":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Distance < sorted[j].Distance })
	case "delivery_time":
		sort.SliceStable(sorted, func(i, j int) bool {
			return deliveryMinutes(sorted[i].DeliveryTime) < deliveryMinutes(sorted[j].DeliveryTime)
		})
	}
	return sorted
}

func matchesQuery(r domain.Restaurant, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	for _, c := range r.Cuisine {
		if strings.Contains(strings.ToLower(c), query) {
			return true
		}
	}
	for _, item := range r.Menu {
		if strings.Contains(strings.ToLower(item.Name), query) {
			return true
		}
	}
	return false
}

func matchesCategory(r domain.Restaurant, category string) bool {
	for _, item := range r.Menu {
		if strings.EqualFold(item.Category, category) {
			return true
		}
	}
	for _, c := range r.Cuisine {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// deliveryMinutes parses the lower bound out of ranges like "25-35 min".
func deliveryMinutes(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	minutes, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return minutes
}
