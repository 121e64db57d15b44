// Package catalog implements an in-memory product catalog store. Products
// carry an ordered sequence of variant sub-records; the store supports
// predicate filtering with projection, positional variant updates, variant
// removal and grouping aggregation.
package catalog

// Category is one of the recognized product categories.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryApparel     Category = "Apparel"
	CategoryFootwear    Category = "Footwear"
	CategoryFitness     Category = "Fitness"
	CategoryAccessories Category = "Accessories"
)

// Product represents a catalog entry. ID is immutable once assigned and
// unique across the store.
type Product struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	Description string    `json:"description,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
}

// Variant represents a specific color/size combination of a product and its
// stock count. ID is unique within the owning product only.
type Variant struct {
	ID    string `json:"id,omitempty"`
	Color string `json:"color,omitempty"`
	Size  string `json:"size,omitempty"`
	Stock int    `json:"stock"`
}

// ProductInput is the insertion payload for a product. An empty ID means the
// store assigns a fresh one.
type ProductInput struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"        validate:"required,max=100"`
	Price       float64        `json:"price"       validate:"min=0"`
	Category    Category       `json:"category"    validate:"required,oneof=Electronics Apparel Footwear Fitness Accessories"`
	Description string         `json:"description,omitempty"`
	Variants    []VariantInput `json:"variants,omitempty" validate:"dive"`
}

// VariantInput is the insertion payload for a variant.
type VariantInput struct {
	ID    string `json:"id,omitempty"`
	Color string `json:"color" validate:"required"`
	Size  string `json:"size"  validate:"required"`
	Stock int    `json:"stock" validate:"min=0"`
}

// clone returns a deep copy so stored records never alias caller-visible
// slices.
func (p Product) clone() Product {
	out := p
	if p.Variants != nil {
		out.Variants = make([]Variant, len(p.Variants))
		copy(out.Variants, p.Variants)
	}
	return out
}

// hasVariant reports whether the product contains a variant with the given
// identity.
func (p Product) hasVariant(id string) bool {
	for _, v := range p.Variants {
		if v.ID == id {
			return true
		}
	}
	return false
}
