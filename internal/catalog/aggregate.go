package catalog

// CategoryCount is one group of the category aggregation.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// StockSummary is one row of the per-product stock aggregation.
type StockSummary struct {
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Category     Category `json:"category"`
	TotalStock   int      `json:"total_stock"`
	VariantCount int      `json:"variant_count"`
}
