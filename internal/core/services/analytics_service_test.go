package services

import (
	"testing"

	"mycloth-atelier/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeInventoryValue(t *testing.T) {
	svc := NewAnalyticsService()

	summary := svc.Summarize([]domain.Product{
		{ID: "a", Category: domain.CategoryMens, Price: 100, Stock: 3},
		{ID: "b", Category: domain.CategoryWomens, Price: 250, Stock: 2},
	})

	assert.Equal(t, int64(100*3+250*2), summary.InventoryValue)
	assert.Equal(t, 2, summary.TotalProducts)
}

func TestSummarizeHistogramShares(t *testing.T) {
	svc := NewAnalyticsService()

	summary := svc.Summarize([]domain.Product{
		{ID: "a", Category: domain.CategoryMens, Price: 1, Stock: 1},
		{ID: "b", Category: domain.CategoryMens, Price: 1, Stock: 1},
		{ID: "c", Category: domain.CategoryWomens, Price: 1, Stock: 1},
		{ID: "d", Category: domain.CategoryActive, Price: 1, Stock: 1},
	})

	require.Len(t, summary.Histogram, 4, "all categories present, empty ones included")

	shares := make(map[domain.Category]float64)
	counts := make(map[domain.Category]int)
	for _, bar := range summary.Histogram {
		shares[bar.Category] = bar.Share
		counts[bar.Category] = bar.Count
	}

	assert.Equal(t, 2, counts[domain.CategoryMens])
	assert.InDelta(t, 0.5, shares[domain.CategoryMens], 1e-9)
	assert.InDelta(t, 0.25, shares[domain.CategoryWomens], 1e-9)
	assert.Zero(t, counts[domain.CategorySleepwear])
	assert.Zero(t, shares[domain.CategorySleepwear])
}

func TestSummarizeLowStockBoundary(t *testing.T) {
	svc := NewAnalyticsService()

	summary := svc.Summarize([]domain.Product{
		{ID: "low", Category: domain.CategoryMens, Price: 1, Stock: 9},
		{ID: "edge", Category: domain.CategoryMens, Price: 1, Stock: 10},
		{ID: "high", Category: domain.CategoryMens, Price: 1, Stock: 50},
	})

	require.Len(t, summary.LowStock, 1, "stock of exactly 10 is not low")
	assert.Equal(t, "low", summary.LowStock[0].ID)
}

func TestSummarizeLowStockKeepsCatalogOrder(t *testing.T) {
	svc := NewAnalyticsService()

	summary := svc.Summarize([]domain.Product{
		{ID: "first", Category: domain.CategoryMens, Price: 1, Stock: 2},
		{ID: "mid", Category: domain.CategoryWomens, Price: 1, Stock: 40},
		{ID: "second", Category: domain.CategoryActive, Price: 1, Stock: 5},
	})

	require.Len(t, summary.LowStock, 2)
	assert.Equal(t, "first", summary.LowStock[0].ID)
	assert.Equal(t, "second", summary.LowStock[1].ID)
}

func TestSummarizeEmptyCatalog(t *testing.T) {
	svc := NewAnalyticsService()

	summary := svc.Summarize(nil)

	assert.Zero(t, summary.InventoryValue)
	assert.Empty(t, summary.LowStock)
	require.Len(t, summary.Histogram, 4)
	for _, bar := range summary.Histogram {
		assert.Zero(t, bar.Share)
	}
}
