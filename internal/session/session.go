// Package session executes the canned catalog command sequence: seeding,
// index declarations, the canned finds, the nested-variant updates and the
// two aggregations. Each command logs its outcome.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avdeenko/catalog/internal/catalog"
)

// Runner drives one store instance through the command sequence.
type Runner struct {
	store  catalog.Store
	logger *slog.Logger
	seed   bool
	seeded []catalog.Product
}

// NewRunner creates a Runner. When seed is false the mutation commands
// addressing seeded records become no-ops.
func NewRunner(store catalog.Store, seed bool, logger *slog.Logger) *Runner {
	return &Runner{
		store:  store,
		logger: logger.With("component", "session"),
		seed:   seed,
	}
}

// Run executes the command sequence in order, checking for cancellation
// between commands.
func (r *Runner) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"seed sample products", r.seedProducts},
		{"declare indexes", r.declareIndexes},
		{"find electronics", r.findElectronics},
		{"find under 150", r.findUnder150},
		{"find black variants", r.findBlackVariants},
		{"discount smartphone", r.discountSmartphone},
		{"append jacket variant", r.appendJacketVariant},
		{"restock running shoes", r.restockRunningShoes},
		{"drop laptop variant", r.dropLaptopVariant},
		{"count by category", r.countByCategory},
		{"total stock per product", r.totalStockPerProduct},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step.fn(); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	return nil
}

func (r *Runner) seedProducts() error {
	if !r.seed {
		r.logger.Info("Seeding disabled, store starts empty")
		return nil
	}
	stored, err := r.store.InsertMany(catalog.SampleProducts())
	if err != nil {
		return err
	}
	r.seeded = stored
	r.logger.Info("Seeded sample products", "count", len(stored))
	return nil
}

func (r *Runner) declareIndexes() error {
	for _, spec := range []catalog.IndexSpec{
		{Field: catalog.FieldCategory},
		{Field: catalog.FieldPrice},
		{Field: catalog.FieldVariantStock},
	} {
		name, err := r.store.CreateIndex(spec)
		if err != nil {
			return err
		}
		r.logger.Info("Declared index", "name", name)
	}
	return nil
}

func (r *Runner) findElectronics() error {
	pred, err := catalog.NewPredicate(catalog.Eq(catalog.FieldCategory, "Electronics"))
	if err != nil {
		return err
	}
	proj, err := catalog.NewProjection(false, []catalog.Field{catalog.FieldName, catalog.FieldPrice}, nil)
	if err != nil {
		return err
	}
	for p := range r.store.Find(pred, proj) {
		r.logger.Info("Electronics product", "name", p.Name, "price", p.Price)
	}
	return nil
}

func (r *Runner) findUnder150() error {
	pred, err := catalog.NewPredicate(catalog.Lt(catalog.FieldPrice, 150))
	if err != nil {
		return err
	}
	for p := range r.store.Find(pred, nil) {
		r.logger.Info("Product under 150", "name", p.Name, "price", p.Price, "category", p.Category)
	}
	return nil
}

func (r *Runner) findBlackVariants() error {
	pred, err := catalog.NewPredicate(catalog.Eq(catalog.FieldVariantColor, "Black"))
	if err != nil {
		return err
	}
	proj, err := catalog.NewProjection(false,
		[]catalog.Field{catalog.FieldName},
		[]catalog.Field{catalog.FieldVariantColor, catalog.FieldVariantStock})
	if err != nil {
		return err
	}
	for p := range r.store.Find(pred, proj) {
		r.logger.Info("Product with a black variant", "name", p.Name, "variants", len(p.Variants))
	}
	return nil
}

func (r *Runner) discountSmartphone() error {
	pred, err := catalog.NewPredicate(catalog.Eq(catalog.FieldName, "Smartphone"))
	if err != nil {
		return err
	}
	matched, err := r.store.UpdateOnePrice(pred, 649)
	if err != nil {
		return err
	}
	r.logger.Info("Discounted smartphone", "matched", matched, "new_price", 649)
	return nil
}

func (r *Runner) appendJacketVariant() error {
	pred, err := catalog.NewPredicate(catalog.Eq(catalog.FieldName, "Winter Jacket"))
	if err != nil {
		return err
	}
	matched, err := r.store.AppendVariant(pred, catalog.VariantInput{Color: "Blue", Size: "XL", Stock: 12})
	if err != nil {
		return err
	}
	r.logger.Info("Appended jacket variant", "matched", matched)
	return nil
}

func (r *Runner) restockRunningShoes() error {
	variantID, ok := r.seededVariantID("Running Shoes", 1)
	if !ok {
		r.logger.Info("Restock skipped, no seeded running shoes")
		return nil
	}
	pred, err := catalog.NewPredicate(catalog.Eq(catalog.FieldName, "Running Shoes"))
	if err != nil {
		return err
	}
	matched, err := r.store.SetVariantStock(pred, variantID, 8)
	if err != nil {
		return err
	}
	r.logger.Info("Restocked running shoes variant", "matched", matched, "variant_id", variantID, "new_stock", 8)
	return nil
}

func (r *Runner) dropLaptopVariant() error {
	variantID, ok := r.seededVariantID("Laptop", 1)
	if !ok {
		r.logger.Info("Variant removal skipped, no seeded laptop")
		return nil
	}
	pred, err := catalog.NewPredicate(catalog.Eq(catalog.FieldName, "Laptop"))
	if err != nil {
		return err
	}
	matched := r.store.RemoveVariant(pred, variantID)
	r.logger.Info("Removed laptop variant", "matched", matched, "variant_id", variantID)
	return nil
}

func (r *Runner) countByCategory() error {
	for _, group := range r.store.CountByCategory() {
		r.logger.Info("Category group", "category", group.Category, "count", group.Count)
	}
	return nil
}

func (r *Runner) totalStockPerProduct() error {
	for _, summary := range r.store.TotalStockPerProduct() {
		r.logger.Info("Stock summary",
			"name", summary.Name,
			"price", summary.Price,
			"category", summary.Category,
			"total_stock", summary.TotalStock,
			"variant_count", summary.VariantCount)
	}
	return nil
}

// seededVariantID resolves the identity of the i-th variant of a seeded
// product by name.
func (r *Runner) seededVariantID(name string, i int) (string, bool) {
	for _, p := range r.seeded {
		if p.Name == name && i < len(p.Variants) {
			return p.Variants[i].ID, true
		}
	}
	return "", false
}
