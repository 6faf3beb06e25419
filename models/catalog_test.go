package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []Service {
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	mk := func(id uint, title string, price float64, category, location string, rating float64, available bool, age time.Duration) Service {
		s := Service{
			Title:     title,
			Price:     price,
			Category:  category,
			Location:  location,
			Rating:    rating,
			Available: available,
		}
		s.ID = id
		s.CreatedAt = base.Add(-age)
		return s
	}
	// Fetch order is newest first, matching the listing query
	return []Service{
		mk(1, "ফ্যান মেরামত", 500, "ইলেকট্রিক্যাল", "ঢাকা", 4.5, true, 0),
		mk(2, "সুইচবোর্ড মেরামত", 300, "ইলেকট্রিক্যাল", "ঢাকা", 4.0, true, time.Hour),
		mk(3, "AC Servicing", 1200, "এসি মেরামত", "ঢাকা", 4.8, true, 2*time.Hour),
		mk(4, "Pipe Repair", 400, "প্লাম্বিং", "চট্টগ্রাম", 3.5, true, 3*time.Hour),
		mk(5, "Fan Installation", 350, "ইলেকট্রিক্যাল", "ঢাকা", 5.0, false, 4*time.Hour),
	}
}

func TestFilterServicesExcludesUnavailable(t *testing.T) {
	got := FilterServices(catalogFixture(), ServiceFilter{})
	require.Len(t, got, 4)
	for _, s := range got {
		assert.True(t, s.Available)
		assert.NotEqual(t, uint(5), s.ID)
	}
}

func TestFilterServicesSearchIsCaseInsensitive(t *testing.T) {
	got := FilterServices(catalogFixture(), ServiceFilter{Search: "ac serv"})
	require.Len(t, got, 1)
	assert.Equal(t, uint(3), got[0].ID)

	// Unavailable services never match, even by title
	got = FilterServices(catalogFixture(), ServiceFilter{Search: "fan installation"})
	assert.Empty(t, got)
}

func TestFilterServicesByCategoryAndLocation(t *testing.T) {
	got := FilterServices(catalogFixture(), ServiceFilter{Category: "ইলেকট্রিক্যাল", Location: "ঢাকা"})
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(2), got[1].ID)
}

func TestFilterServicesSortPriceLow(t *testing.T) {
	got := FilterServices(catalogFixture(), ServiceFilter{Category: "ইলেকট্রিক্যাল", Location: "ঢাকা", SortBy: "price-low"})
	require.Len(t, got, 2)
	assert.Equal(t, 300.0, got[0].Price)
	assert.Equal(t, 500.0, got[1].Price)
}

func TestFilterServicesSortPriceHigh(t *testing.T) {
	got := FilterServices(catalogFixture(), ServiceFilter{SortBy: "price-high"})
	require.Len(t, got, 4)
	assert.Equal(t, 1200.0, got[0].Price)
	assert.Equal(t, 300.0, got[3].Price)
}

func TestFilterServicesSortRating(t *testing.T) {
	got := FilterServices(catalogFixture(), ServiceFilter{SortBy: "rating"})
	require.Len(t, got, 4)
	assert.Equal(t, 4.8, got[0].Rating)
	assert.Equal(t, 3.5, got[3].Rating)
}

func TestFilterServicesDefaultSortNewest(t *testing.T) {
	got := FilterServices(catalogFixture(), ServiceFilter{})
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.After(got[i-1].CreatedAt))
	}
}

func TestSortServicesStableOnTies(t *testing.T) {
	services := catalogFixture()[:2]
	services[0].Price = 500
	services[1].Price = 500
	SortServices(services, "price-low")
	// Tied prices keep fetch order
	assert.Equal(t, uint(1), services[0].ID)
	assert.Equal(t, uint(2), services[1].ID)
}
