package catalog

import "iter"

// Store is an interface for product catalog operations.
// It abstracts the underlying data store, allowing for different implementations.
type Store interface {
	// InsertMany validates the inputs, assigns identities where absent and
	// appends the products in order. Returns the stored records.
	// Re-inserting the same literal input yields independent records with
	// distinct product identities.
	InsertMany(inputs []ProductInput) ([]Product, error)

	// Find returns a restartable sequence of the products matching the
	// predicate, in insertion order. A non-nil projection narrows the
	// emitted fields. Emitted records are copies.
	Find(pred Predicate, proj *Projection) iter.Seq[Product]

	// UpdateOnePrice sets the price of the first matching product.
	// Returns whether a product was updated; zero matches is a no-op.
	UpdateOnePrice(pred Predicate, newPrice float64) (bool, error)

	// AppendVariant appends a variant with a freshly assigned identity to
	// the first matching product. Rejects negative stock.
	AppendVariant(pred Predicate, input VariantInput) (bool, error)

	// SetVariantStock updates the stock of exactly the identified variant
	// of the first product that matches the predicate and contains it.
	// Sibling variants are never touched. Rejects negative stock.
	SetVariantStock(pred Predicate, variantID string, newStock int) (bool, error)

	// RemoveVariant removes the identified variant from the first matching
	// product, preserving the relative order of the remaining variants.
	RemoveVariant(pred Predicate, variantID string) bool

	// CountByCategory groups all products by category. The result is
	// sorted by count descending, ties broken by the order in which each
	// category first appeared.
	CountByCategory() []CategoryCount

	// TotalStockPerProduct summarizes every product in insertion order:
	// total stock across its variants (0 if none) and the variant count.
	TotalStockPerProduct() []StockSummary

	// CreateIndex records an index declaration and returns its derived
	// name. Indexes carry no query-planning semantics here.
	CreateIndex(spec IndexSpec) (string, error)

	// Indexes returns the declared indexes in creation order.
	Indexes() []Index
}
