package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MemoryStore_CountByCategory(t *testing.T) {
	t.Run("sorts by count descending with ties in first-appearance order", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		// when
		groups := s.CountByCategory()
		// then
		assert.Equal(t, []CategoryCount{
			{Category: CategoryElectronics, Count: 2},
			{Category: CategoryApparel, Count: 1},
			{Category: CategoryFootwear, Count: 1},
			{Category: CategoryFitness, Count: 1},
		}, groups)
	})

	t.Run("empty store yields no groups", func(t *testing.T) {
		// given
		s := NewMemoryStore()
		// when / then
		assert.Empty(t, s.CountByCategory())
	})
}

func Test_MemoryStore_TotalStockPerProduct(t *testing.T) {
	t.Run("sums variant stock per product in insertion order", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		// when
		summaries := s.TotalStockPerProduct()
		// then
		assert.Equal(t, []StockSummary{
			{Name: "Winter Jacket", Price: 200, Category: CategoryApparel, TotalStock: 32, VariantCount: 2},
			{Name: "Smartphone", Price: 699, Category: CategoryElectronics, TotalStock: 34, VariantCount: 2},
			{Name: "Running Shoes", Price: 120, Category: CategoryFootwear, TotalStock: 15, VariantCount: 2},
			{Name: "Laptop", Price: 1299, Category: CategoryElectronics, TotalStock: 22, VariantCount: 2},
			{Name: "Yoga Mat", Price: 45, Category: CategoryFitness, TotalStock: 30, VariantCount: 1},
		}, summaries)
	})

	t.Run("a product without variants reports zero stock", func(t *testing.T) {
		// given
		s := NewMemoryStore()
		_, err := s.InsertMany([]ProductInput{{Name: "Gift Card", Price: 25, Category: CategoryAccessories}})
		require.NoError(t, err)
		// when
		summaries := s.TotalStockPerProduct()
		// then
		require.Len(t, summaries, 1)
		assert.Equal(t, 0, summaries[0].TotalStock)
		assert.Equal(t, 0, summaries[0].VariantCount)
	})
}
