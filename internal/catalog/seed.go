package catalog

// SampleProducts returns the sample product set the tutorial session seeds
// the store with. Product identities are assigned at insert time; variant
// identities are fixed in the literals so the canned update commands can
// address them.
func SampleProducts() []ProductInput {
	return []ProductInput{
		{
			Name:        "Winter Jacket",
			Price:       200,
			Category:    CategoryApparel,
			Description: "Insulated jacket for cold weather",
			Variants: []VariantInput{
				{ID: "3f8e2b6c-9d41-4f7a-8c25-5e90d1bb00a1", Color: "Navy", Size: "M", Stock: 20},
				{ID: "3f8e2b6c-9d41-4f7a-8c25-5e90d1bb00a2", Color: "Navy", Size: "L", Stock: 12},
			},
		},
		{
			Name:        "Smartphone",
			Price:       699,
			Category:    CategoryElectronics,
			Description: "6.1-inch display, dual camera",
			Variants: []VariantInput{
				{ID: "3f8e2b6c-9d41-4f7a-8c25-5e90d1bb00ab", Color: "Black", Size: "128GB", Stock: 25},
				{ID: "3f8e2b6c-9d41-4f7a-8c25-5e90d1bb00ac", Color: "Graphite", Size: "256GB", Stock: 9},
			},
		},
		{
			Name:        "Running Shoes",
			Price:       120,
			Category:    CategoryFootwear,
			Description: "Lightweight trainers",
			Variants: []VariantInput{
				{ID: "3f8e2b6c-9d41-4f7a-8c25-5e90d1bb00af", Color: "Black", Size: "42", Stock: 10},
				{ID: "3f8e2b6c-9d41-4f7a-8c25-5e90d1bb00b1", Color: "White", Size: "43", Stock: 5},
			},
		},
		{
			Name:        "Laptop",
			Price:       1299,
			Category:    CategoryElectronics,
			Description: "Thin and light, 16GB RAM",
			Variants: []VariantInput{
				{ID: "3f8e2b6c-9d41-4f7a-8c25-5e90d1bb00c1", Color: "Silver", Size: "15-inch", Stock: 15},
				{ID: "3f8e2b6c-9d41-4f7a-8c25-5e90d1bb00c2", Color: "Space Gray", Size: "14-inch", Stock: 7},
			},
		},
		{
			Name:     "Yoga Mat",
			Price:    45,
			Category: CategoryFitness,
			Variants: []VariantInput{
				{ID: "3f8e2b6c-9d41-4f7a-8c25-5e90d1bb00d1", Color: "Purple", Size: "Standard", Stock: 30},
			},
		},
	}
}
