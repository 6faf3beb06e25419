package models

import (
	"sort"
	"strings"
)

// ServiceFilter mirrors the search controls of the services listing.
type ServiceFilter struct {
	Search   string
	Category string
	Location string
	SortBy   string // "newest" (default), "price-low", "price-high", "rating"
}

// FilterServices applies the listing predicate and sort over a fetched
// collection. Unavailable services are always excluded, the title match is
// case-insensitive and category/location filters are exact when set.
func FilterServices(services []Service, f ServiceFilter) []Service {
	q := strings.ToLower(f.Search)
	filtered := make([]Service, 0, len(services))
	for _, s := range services {
		if !s.Available {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(s.Title), q) {
			continue
		}
		if f.Category != "" && s.Category != f.Category {
			continue
		}
		if f.Location != "" && s.Location != f.Location {
			continue
		}
		filtered = append(filtered, s)
	}
	SortServices(filtered, f.SortBy)
	return filtered
}

// SortServices sorts in place. The sort is stable: services tied on the sort
// key keep their fetch order (newest first from the database).
func SortServices(services []Service, sortBy string) {
	switch sortBy {
	case "price-low":
		sort.SliceStable(services, func(i, j int) bool {
			return services[i].Price < services[j].Price
		})
	case "price-high":
		sort.SliceStable(services, func(i, j int) bool {
			return services[i].Price > services[j].Price
		})
	case "rating":
		sort.SliceStable(services, func(i, j int) bool {
			return services[i].Rating > services[j].Rating
		})
	default: // "newest"
		sort.SliceStable(services, func(i, j int) bool {
			return services[i].CreatedAt.After(services[j].CreatedAt)
		})
	}
}
