package catalog

import (
	"fmt"
	"iter"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MemoryStore implements Store using an ordered in-memory slice.
type MemoryStore struct {
	mu       sync.RWMutex
	products []Product
	indexes  []Index
	validate *validator.Validate
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		validate: validator.New(),
	}
}

// InsertMany validates the inputs, assigns identities where absent and
// appends the products in insertion order.
// Inputs are validated up front; nothing is inserted on a validation error.
func (s *MemoryStore) InsertMany(inputs []ProductInput) ([]Product, error) {
	for i, in := range inputs {
		if err := s.validate.Struct(in); err != nil {
			return nil, fmt.Errorf("product %d: %w", i, newValidationError(err))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]Product, 0, len(inputs))
	for _, in := range inputs {
		p := Product{
			ID:          in.ID,
			Name:        in.Name,
			Price:       in.Price,
			Category:    in.Category,
			Description: in.Description,
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if len(in.Variants) > 0 {
			p.Variants = make([]Variant, len(in.Variants))
			for j, vin := range in.Variants {
				v := Variant{
					ID:    vin.ID,
					Color: vin.Color,
					Size:  vin.Size,
					Stock: vin.Stock,
				}
				if v.ID == "" {
					v.ID = uuid.NewString()
				}
				p.Variants[j] = v
			}
		}
		s.products = append(s.products, p)
		stored = append(stored, p.clone())
	}
	return stored, nil
}

// Find returns a restartable sequence of matching products in insertion
// order. Each iteration observes the store state at the time it starts.
func (s *MemoryStore) Find(pred Predicate, proj *Projection) iter.Seq[Product] {
	return func(yield func(Product) bool) {
		s.mu.RLock()
		matched := make([]Product, 0)
		for _, p := range s.products {
			if pred.Matches(p) {
				matched = append(matched, p.clone())
			}
		}
		s.mu.RUnlock()

		for _, p := range matched {
			if proj != nil {
				p = proj.apply(p)
			}
			if !yield(p) {
				return
			}
		}
	}
}

// UpdateOnePrice sets the price of the first matching product.
func (s *MemoryStore) UpdateOnePrice(pred Predicate, newPrice float64) (bool, error) {
	if newPrice < 0 {
		return false, fmt.Errorf("price: %w", ErrInvalidValue)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if pred.Matches(s.products[i]) {
			s.products[i].Price = newPrice
			return true, nil
		}
	}
	return false, nil
}

// AppendVariant appends a variant with a freshly assigned identity to the
// first matching product.
func (s *MemoryStore) AppendVariant(pred Predicate, input VariantInput) (bool, error) {
	if err := s.validate.Struct(input); err != nil {
		return false, newValidationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if pred.Matches(s.products[i]) {
			s.products[i].Variants = append(s.products[i].Variants, Variant{
				ID:    uuid.NewString(),
				Color: input.Color,
				Size:  input.Size,
				Stock: input.Stock,
			})
			return true, nil
		}
	}
	return false, nil
}

// SetVariantStock updates exactly the identified variant of the first product
// that matches the predicate and contains it. Siblings are never touched.
func (s *MemoryStore) SetVariantStock(pred Predicate, variantID string, newStock int) (bool, error) {
	if newStock < 0 {
		return false, fmt.Errorf("stock: %w", ErrInvalidValue)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if !pred.Matches(s.products[i]) || !s.products[i].hasVariant(variantID) {
			continue
		}
		for j := range s.products[i].Variants {
			if s.products[i].Variants[j].ID == variantID {
				s.products[i].Variants[j].Stock = newStock
				return true, nil
			}
		}
	}
	return false, nil
}

// RemoveVariant removes the identified variant from the first matching
// product, preserving the order of the remaining variants.
func (s *MemoryStore) RemoveVariant(pred Predicate, variantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if !pred.Matches(s.products[i]) || !s.products[i].hasVariant(variantID) {
			continue
		}
		variants := s.products[i].Variants
		kept := make([]Variant, 0, len(variants)-1)
		for _, v := range variants {
			if v.ID != variantID {
				kept = append(kept, v)
			}
		}
		s.products[i].Variants = kept
		return true
	}
	return false
}

// CountByCategory groups all products by category, sorted by count
// descending with ties broken by first-appearance order.
func (s *MemoryStore) CountByCategory() []CategoryCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[Category]int)
	groups := make([]CategoryCount, 0)
	for _, p := range s.products {
		if _, seen := counts[p.Category]; !seen {
			groups = append(groups, CategoryCount{Category: p.Category})
		}
		counts[p.Category]++
	}
	for i := range groups {
		groups[i].Count = counts[groups[i].Category]
	}
	// groups is already in first-appearance order; the stable sort keeps
	// that order within equal counts.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	return groups
}

// TotalStockPerProduct summarizes every product in insertion order.
func (s *MemoryStore) TotalStockPerProduct() []StockSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]StockSummary, len(s.products))
	for i, p := range s.products {
		total := 0
		for _, v := range p.Variants {
			total += v.Stock
		}
		summaries[i] = StockSummary{
			Name:         p.Name,
			Price:        p.Price,
			Category:     p.Category,
			TotalStock:   total,
			VariantCount: len(p.Variants),
		}
	}
	return summaries
}
