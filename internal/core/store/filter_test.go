package store_test

import (
	"testing"

	"github.com/goldencart/storefront/internal/core/domain"
	"github.com/goldencart/storefront/internal/core/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Red Lipstick", Category: "beauty", Brand: "Glamour", Price: 10, Rating: 4.5},
		{ID: 2, Title: "Rice Cooker", Category: "kitchen", Brand: "HomePro", Price: 5, Rating: 4.8},
		{ID: 3, Title: "Red Nail Polish", Category: "beauty", Brand: "Essence", Price: 10, Rating: 3.9},
		{ID: 4, Title: "Blue Mug", Category: "kitchen", Brand: "HomePro", Price: 7, Rating: 4.1},
	}
}

func ids(ps []domain.Product) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestVisible(t *testing.T) {

	t.Run("NoCriteriaKeepsOrder", func(t *testing.T) {
		vs := store.Visible(catalogFixture(), domain.FilterCriteria{MaxPrice: 100})
		assert.Equal(t, []int{1, 2, 3, 4}, ids(vs))
	})

	t.Run("SearchTermCaseInsensitive", func(t *testing.T) {
		c := domain.FilterCriteria{SearchTerm: "red", MaxPrice: 100}
		vs := store.Visible(catalogFixture(), c)
		assert.Equal(t, []int{1, 3}, ids(vs))
	})

	t.Run("CategoryExactMatch", func(t *testing.T) {
		items := []domain.Product{
			{ID: 1, Price: 10, Rating: 4.5, Category: "A"},
			{ID: 2, Price: 5, Rating: 4.8, Category: "B"},
		}
		c := domain.FilterCriteria{Category: "A", MaxPrice: 100}
		assert.Equal(t, []int{1}, ids(store.Visible(items, c)))
	})

	t.Run("BrandExactMatch", func(t *testing.T) {
		c := domain.FilterCriteria{Brand: "HomePro", MaxPrice: 100}
		assert.Equal(t, []int{2, 4}, ids(store.Visible(catalogFixture(), c)))
	})

	t.Run("PriceRangeInclusive", func(t *testing.T) {
		c := domain.FilterCriteria{MinPrice: 5, MaxPrice: 7}
		assert.Equal(t, []int{2, 4}, ids(store.Visible(catalogFixture(), c)))
	})

	t.Run("SortPriceAscending", func(t *testing.T) {
		items := []domain.Product{
			{ID: 1, Price: 10, Rating: 4.5, Category: "A"},
			{ID: 2, Price: 5, Rating: 4.8, Category: "B"},
		}
		c := domain.FilterCriteria{MaxPrice: 100, Sort: domain.SortPriceAsc}
		assert.Equal(t, []int{2, 1}, ids(store.Visible(items, c)))
	})

	t.Run("SortIsStable", func(t *testing.T) {
		// ids 1 and 3 share price 10: their relative order must hold
		c := domain.FilterCriteria{MaxPrice: 100, Sort: domain.SortPriceAsc}
		assert.Equal(t, []int{2, 4, 1, 3}, ids(store.Visible(catalogFixture(), c)))

		c.Sort = domain.SortPriceDesc
		assert.Equal(t, []int{1, 3, 4, 2}, ids(store.Visible(catalogFixture(), c)))
	})

	t.Run("SortRatingDescending", func(t *testing.T) {
		c := domain.FilterCriteria{MaxPrice: 100, Sort: domain.SortRatingDesc}
		assert.Equal(t, []int{2, 1, 4, 3}, ids(store.Visible(catalogFixture(), c)))
	})

	t.Run("InvertedRangeIsSwapped", func(t *testing.T) {
		c := domain.FilterCriteria{MinPrice: 7, MaxPrice: 5}
		assert.Equal(t, []int{2, 4}, ids(store.Visible(catalogFixture(), c)))
	})

	t.Run("Idempotent", func(t *testing.T) {
		c := domain.FilterCriteria{
			SearchTerm: "r", MaxPrice: 100, Sort: domain.SortPriceAsc,
		}
		once := store.Visible(catalogFixture(), c)
		twice := store.Visible(once, c)
		assert.Equal(t, once, twice)
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		items := catalogFixture()
		c := domain.FilterCriteria{MaxPrice: 100, Sort: domain.SortPriceAsc}
		_ = store.Visible(items, c)
		require.Equal(t, catalogFixture(), items)
	})
}
