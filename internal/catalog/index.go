package catalog

import "fmt"

// IndexSpec declares an index over a single queryable field.
type IndexSpec struct {
	Field      Field
	Descending bool
}

// Index is a recorded index declaration. The store accepts declarations for
// compatibility with the original command surface; there is no query planner
// behind them.
type Index struct {
	Name       string
	Field      Field
	Descending bool
}

// CreateIndex records the declaration and returns the derived index name.
// Re-declaring an existing index returns the existing name.
func (s *MemoryStore) CreateIndex(spec IndexSpec) (string, error) {
	switch spec.Field {
	case FieldName, FieldPrice, FieldCategory,
		FieldVariantColor, FieldVariantSize, FieldVariantStock:
	default:
		return "", fmt.Errorf("%w: %q is not indexable", ErrUnknownField, spec.Field)
	}

	order := 1
	if spec.Descending {
		order = -1
	}
	name := fmt.Sprintf("%s_%d", spec.Field, order)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, idx := range s.indexes {
		if idx.Name == name {
			return name, nil
		}
	}
	s.indexes = append(s.indexes, Index{
		Name:       name,
		Field:      spec.Field,
		Descending: spec.Descending,
	})
	return name, nil
}

// Indexes returns the declared indexes in creation order.
func (s *MemoryStore) Indexes() []Index {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Index, len(s.indexes))
	copy(out, s.indexes)
	return out
}
