package services

import (
	"mycloth-atelier/internal/core/domain"
)

// AnalyticsService derives admin metrics from the catalog
type AnalyticsService struct{}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

// CategoryShare represents one bar of the category histogram
type CategoryShare struct {
	Category domain.Category `json:"category"`
	Count    int             `json:"count"`
	Share    float64         `json:"share"`
}

// InventorySummary represents the admin analytics block
type InventorySummary struct {
	TotalProducts  int              `json:"total_products"`
	InventoryValue int64            `json:"inventory_value"`
	Histogram      []CategoryShare  `json:"histogram"`
	LowStock       []domain.Product `json:"low_stock"`
}

// Summarize computes inventory value, the category histogram and the
// low-stock list. Pure over its input.
func (s *AnalyticsService) Summarize(products []domain.Product) *InventorySummary {
	summary := &InventorySummary{
		TotalProducts: len(products),
		LowStock:      []domain.Product{},
	}

	counts := make(map[domain.Category]int)
	for _, p := range products {
		summary.InventoryValue += p.Price * int64(p.Stock)
		counts[p.Category]++
		if p.Stock < domain.LowStockThreshold {
			summary.LowStock = append(summary.LowStock, p)
		}
	}

	// Histogram in fixed category order, empty categories included
	summary.Histogram = make([]CategoryShare, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		share := 0.0
		if len(products) > 0 {
			share = float64(counts[category]) / float64(len(products))
		}
		summary.Histogram = append(summary.Histogram, CategoryShare{
			Category: category,
			Count:    counts[category],
			Share:    share,
		})
	}

	return summary
}
