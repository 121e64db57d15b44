package catalog

import "fmt"

// Field names a queryable or projectable document field. Fields under
// variants.* match with "any element matches" semantics.
type Field string

const (
	FieldName        Field = "name"
	FieldPrice       Field = "price"
	FieldCategory    Field = "category"
	FieldDescription Field = "description"
	FieldVariants    Field = "variants"

	FieldVariantID    Field = "variants.id"
	FieldVariantColor Field = "variants.color"
	FieldVariantSize  Field = "variants.size"
	FieldVariantStock Field = "variants.stock"
)

// Comparator is the operation a clause applies between a field and a value.
type Comparator int

const (
	CompareEq Comparator = iota
	CompareLt
)

func (c Comparator) String() string {
	switch c {
	case CompareEq:
		return "eq"
	case CompareLt:
		return "lt"
	default:
		return fmt.Sprintf("comparator(%d)", int(c))
	}
}

// Clause is a single field/comparator/value condition. Construct clauses via
// Eq and Lt; they are checked when the enclosing predicate is built.
type Clause struct {
	field Field
	op    Comparator
	value any
}

// Eq builds an equality clause.
func Eq(field Field, value any) Clause {
	return Clause{field: field, op: CompareEq, value: value}
}

// Lt builds a less-than clause. Only numeric fields support it.
func Lt(field Field, value any) Clause {
	return Clause{field: field, op: CompareLt, value: value}
}

// validate checks the field name, comparator compatibility and value type.
func (c Clause) validate() error {
	switch c.field {
	case FieldName, FieldCategory, FieldVariantColor, FieldVariantSize:
		if c.op != CompareEq {
			return fmt.Errorf("%w: %s %s", ErrBadComparator, c.field, c.op)
		}
		if _, ok := c.value.(string); !ok {
			return fmt.Errorf("%w: %s wants a string", ErrBadValue, c.field)
		}
	case FieldPrice, FieldVariantStock:
		if c.op != CompareEq && c.op != CompareLt {
			return fmt.Errorf("%w: %s %s", ErrBadComparator, c.field, c.op)
		}
		if _, ok := toFloat(c.value); !ok {
			return fmt.Errorf("%w: %s wants a number", ErrBadValue, c.field)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, c.field)
	}
	return nil
}

// matches reports whether the product satisfies the clause.
func (c Clause) matches(p Product) bool {
	switch c.field {
	case FieldName:
		return c.value.(string) == p.Name
	case FieldCategory:
		return c.value.(string) == string(p.Category)
	case FieldPrice:
		want, _ := toFloat(c.value)
		return compare(p.Price, want, c.op)
	case FieldVariantColor:
		for _, v := range p.Variants {
			if v.Color == c.value.(string) {
				return true
			}
		}
	case FieldVariantSize:
		for _, v := range p.Variants {
			if v.Size == c.value.(string) {
				return true
			}
		}
	case FieldVariantStock:
		want, _ := toFloat(c.value)
		for _, v := range p.Variants {
			if compare(float64(v.Stock), want, c.op) {
				return true
			}
		}
	}
	return false
}

// Predicate is a conjunction of clauses. The zero value matches every
// product.
type Predicate struct {
	clauses []Clause
}

// NewPredicate validates the given clauses and combines them into a
// conjunction.
func NewPredicate(clauses ...Clause) (Predicate, error) {
	for _, c := range clauses {
		if err := c.validate(); err != nil {
			return Predicate{}, err
		}
	}
	return Predicate{clauses: clauses}, nil
}

// MatchAll returns the predicate that matches every product.
func MatchAll() Predicate {
	return Predicate{}
}

// Matches reports whether every clause of the predicate holds for p.
func (pr Predicate) Matches(p Product) bool {
	for _, c := range pr.clauses {
		if !c.matches(p) {
			return false
		}
	}
	return true
}

// Projection selects a subset of product fields and, optionally, a subset of
// fields within each variant. The product identity is omitted unless
// requested.
type Projection struct {
	fields        map[Field]bool
	variantFields map[Field]bool
	includeID     bool
}

// NewProjection validates the requested field subsets. Fields must be
// top-level; variantFields must be variants.* fields. Requesting
// FieldVariants emits full variant sub-documents; a non-empty variantFields
// narrows them instead.
func NewProjection(includeID bool, fields []Field, variantFields []Field) (*Projection, error) {
	if len(fields) == 0 && len(variantFields) == 0 {
		return nil, fmt.Errorf("%w: projection selects no fields", ErrBadValue)
	}
	p := &Projection{
		fields:        make(map[Field]bool, len(fields)),
		variantFields: make(map[Field]bool, len(variantFields)),
		includeID:     includeID,
	}
	for _, f := range fields {
		switch f {
		case FieldName, FieldPrice, FieldCategory, FieldDescription, FieldVariants:
			p.fields[f] = true
		default:
			return nil, fmt.Errorf("%w: %q is not a top-level field", ErrUnknownField, f)
		}
	}
	for _, f := range variantFields {
		switch f {
		case FieldVariantID, FieldVariantColor, FieldVariantSize, FieldVariantStock:
			p.variantFields[f] = true
		default:
			return nil, fmt.Errorf("%w: %q is not a variant field", ErrUnknownField, f)
		}
	}
	return p, nil
}

// apply copies the selected fields of p into a fresh Product.
func (pj *Projection) apply(p Product) Product {
	out := Product{}
	if pj.includeID {
		out.ID = p.ID
	}
	if pj.fields[FieldName] {
		out.Name = p.Name
	}
	if pj.fields[FieldPrice] {
		out.Price = p.Price
	}
	if pj.fields[FieldCategory] {
		out.Category = p.Category
	}
	if pj.fields[FieldDescription] {
		out.Description = p.Description
	}
	switch {
	case len(pj.variantFields) > 0:
		out.Variants = make([]Variant, len(p.Variants))
		for i, v := range p.Variants {
			sub := Variant{}
			if pj.variantFields[FieldVariantID] {
				sub.ID = v.ID
			}
			if pj.variantFields[FieldVariantColor] {
				sub.Color = v.Color
			}
			if pj.variantFields[FieldVariantSize] {
				sub.Size = v.Size
			}
			if pj.variantFields[FieldVariantStock] {
				sub.Stock = v.Stock
			}
			out.Variants[i] = sub
		}
	case pj.fields[FieldVariants]:
		out.Variants = make([]Variant, len(p.Variants))
		copy(out.Variants, p.Variants)
	}
	return out
}

// toFloat widens the numeric types a clause value may carry.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func compare(have, want float64, op Comparator) bool {
	if op == CompareLt {
		return have < want
	}
	return have == want
}
