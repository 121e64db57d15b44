package catalog

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededStore inserts the sample product set and returns the stored records.
func seededStore(t *testing.T) (*MemoryStore, []Product) {
	t.Helper()
	s := NewMemoryStore()
	stored, err := s.InsertMany(SampleProducts())
	require.NoError(t, err)
	return s, stored
}

func mustPredicate(t *testing.T, clauses ...Clause) Predicate {
	t.Helper()
	pred, err := NewPredicate(clauses...)
	require.NoError(t, err)
	return pred
}

func names(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func Test_MemoryStore_InsertMany(t *testing.T) {
	t.Run("assigns identities and preserves insertion order", func(t *testing.T) {
		// given
		s := NewMemoryStore()
		// when
		stored, err := s.InsertMany(SampleProducts())
		// then
		require.NoError(t, err)
		require.Len(t, stored, 5)
		for _, p := range stored {
			assert.NotEmpty(t, p.ID)
		}
		all := slices.Collect(s.Find(MatchAll(), nil))
		assert.Equal(t,
			[]string{"Winter Jacket", "Smartphone", "Running Shoes", "Laptop", "Yoga Mat"},
			names(all))
	})

	t.Run("keeps variant identities from the input", func(t *testing.T) {
		// given
		s := NewMemoryStore()
		// when
		stored, err := s.InsertMany(SampleProducts())
		// then
		require.NoError(t, err)
		shoes := stored[2]
		require.Len(t, shoes.Variants, 2)
		assert.Equal(t, "3f8e2b6c-9d41-4f7a-8c25-5e90d1bb00af", shoes.Variants[0].ID)
		assert.Equal(t, "3f8e2b6c-9d41-4f7a-8c25-5e90d1bb00b1", shoes.Variants[1].ID)
	})

	t.Run("re-inserting the same literals yields independent records", func(t *testing.T) {
		// given
		s := NewMemoryStore()
		first, err := s.InsertMany(SampleProducts())
		require.NoError(t, err)
		// when
		second, err := s.InsertMany(SampleProducts())
		// then
		require.NoError(t, err)
		all := slices.Collect(s.Find(MatchAll(), nil))
		assert.Len(t, all, 10)
		for i := range first {
			assert.NotEqual(t, first[i].ID, second[i].ID)
		}
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		// given
		s := NewMemoryStore()
		input := []ProductInput{{
			Name:     "Gloves",
			Price:    15,
			Category: CategoryAccessories,
			Variants: []VariantInput{{Color: "Black", Size: "M", Stock: -1}},
		}}
		// when
		stored, err := s.InsertMany(input)
		// then
		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.Nil(t, stored)
		assert.Empty(t, slices.Collect(s.Find(MatchAll(), nil)))
	})

	t.Run("rejects an unrecognized category", func(t *testing.T) {
		// given
		s := NewMemoryStore()
		input := []ProductInput{{Name: "Drone", Price: 400, Category: "Gadgets"}}
		// when
		_, err := s.InsertMany(input)
		// then
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "Category")
	})
}

func Test_MemoryStore_Find(t *testing.T) {
	t.Run("empty predicate returns the full set in insertion order", func(t *testing.T) {
		// given
		s, stored := seededStore(t)
		// when
		all := slices.Collect(s.Find(MatchAll(), nil))
		// then
		assert.Equal(t, stored, all)
	})

	t.Run("category equality", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		pred := mustPredicate(t, Eq(FieldCategory, "Electronics"))
		// when
		got := slices.Collect(s.Find(pred, nil))
		// then
		assert.Equal(t, []string{"Smartphone", "Laptop"}, names(got))
	})

	t.Run("price comparison", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		pred := mustPredicate(t, Lt(FieldPrice, 150))
		// when
		got := slices.Collect(s.Find(pred, nil))
		// then
		assert.Equal(t, []string{"Running Shoes", "Yoga Mat"}, names(got))
	})

	t.Run("nested variant clause matches any element", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		pred := mustPredicate(t, Eq(FieldVariantColor, "Black"))
		// when
		got := slices.Collect(s.Find(pred, nil))
		// then
		assert.Equal(t, []string{"Smartphone", "Running Shoes"}, names(got))
	})

	t.Run("projection narrows the emitted fields", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		pred := mustPredicate(t, Eq(FieldCategory, "Electronics"))
		proj, err := NewProjection(false, []Field{FieldName, FieldPrice}, nil)
		require.NoError(t, err)
		// when
		got := slices.Collect(s.Find(pred, proj))
		// then
		assert.Equal(t, []Product{
			{Name: "Smartphone", Price: 699},
			{Name: "Laptop", Price: 1299},
		}, got)
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		seq := s.Find(MatchAll(), nil)
		// when
		first := slices.Collect(seq)
		second := slices.Collect(seq)
		// then
		assert.Equal(t, first, second)
	})

	t.Run("emitted records do not alias store state", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		got := slices.Collect(s.Find(MatchAll(), nil))
		// when
		got[0].Variants[0].Stock = 999
		// then
		fresh := slices.Collect(s.Find(MatchAll(), nil))
		assert.Equal(t, 20, fresh[0].Variants[0].Stock)
	})
}

func Test_MemoryStore_UpdateOnePrice(t *testing.T) {
	t.Run("updates only the first match in insertion order", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		pred := mustPredicate(t, Eq(FieldCategory, "Electronics"))
		// when
		matched, err := s.UpdateOnePrice(pred, 649)
		// then
		require.NoError(t, err)
		assert.True(t, matched)
		got := slices.Collect(s.Find(pred, nil))
		assert.Equal(t, 649.0, got[0].Price) // Smartphone
		assert.Equal(t, 1299.0, got[1].Price)
	})

	t.Run("zero matches is a silent no-op", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		pred := mustPredicate(t, Eq(FieldName, "Toaster"))
		// when
		matched, err := s.UpdateOnePrice(pred, 10)
		// then
		require.NoError(t, err)
		assert.False(t, matched)
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		// when
		matched, err := s.UpdateOnePrice(MatchAll(), -1)
		// then
		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.False(t, matched)
	})
}

func Test_MemoryStore_AppendVariant(t *testing.T) {
	t.Run("appends with a fresh identity to the first match", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		pred := mustPredicate(t, Eq(FieldName, "Winter Jacket"))
		// when
		matched, err := s.AppendVariant(pred, VariantInput{Color: "Blue", Size: "XL", Stock: 12})
		// then
		require.NoError(t, err)
		assert.True(t, matched)
		jacket := slices.Collect(s.Find(pred, nil))[0]
		require.Len(t, jacket.Variants, 3)
		added := jacket.Variants[2]
		assert.NotEmpty(t, added.ID)
		assert.Equal(t, Variant{ID: added.ID, Color: "Blue", Size: "XL", Stock: 12}, added)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		// when
		matched, err := s.AppendVariant(MatchAll(), VariantInput{Color: "Blue", Size: "XL", Stock: -3})
		// then
		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.False(t, matched)
	})

	t.Run("zero matches is a silent no-op", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		pred := mustPredicate(t, Eq(FieldName, "Toaster"))
		// when
		matched, err := s.AppendVariant(pred, VariantInput{Color: "Blue", Size: "XL", Stock: 1})
		// then
		require.NoError(t, err)
		assert.False(t, matched)
	})
}

func Test_MemoryStore_SetVariantStock(t *testing.T) {
	t.Run("updates exactly the matched element", func(t *testing.T) {
		// given
		s, stored := seededStore(t)
		shoes := stored[2]
		pred := mustPredicate(t, Eq(FieldName, "Running Shoes"))
		// when
		matched, err := s.SetVariantStock(pred, shoes.Variants[1].ID, 8)
		// then
		require.NoError(t, err)
		assert.True(t, matched)
		got := slices.Collect(s.Find(pred, nil))[0]
		assert.Equal(t, 10, got.Variants[0].Stock) // sibling untouched
		assert.Equal(t, 8, got.Variants[1].Stock)
	})

	t.Run("requires the predicate and the variant on the same product", func(t *testing.T) {
		// given
		s, stored := seededStore(t)
		laptopVariant := stored[3].Variants[0].ID
		pred := mustPredicate(t, Eq(FieldName, "Running Shoes"))
		// when
		matched, err := s.SetVariantStock(pred, laptopVariant, 8)
		// then
		require.NoError(t, err)
		assert.False(t, matched)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		// given
		s, stored := seededStore(t)
		// when
		matched, err := s.SetVariantStock(MatchAll(), stored[2].Variants[0].ID, -5)
		// then
		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.False(t, matched)
	})

	t.Run("unknown variant identity is a silent no-op", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		// when
		matched, err := s.SetVariantStock(MatchAll(), "no-such-variant", 3)
		// then
		require.NoError(t, err)
		assert.False(t, matched)
	})
}

func Test_MemoryStore_RemoveVariant(t *testing.T) {
	t.Run("removes the identified variant and preserves order", func(t *testing.T) {
		// given
		s, stored := seededStore(t)
		laptop := stored[3]
		pred := mustPredicate(t, Eq(FieldName, "Laptop"))
		// when
		matched := s.RemoveVariant(pred, laptop.Variants[1].ID)
		// then
		assert.True(t, matched)
		got := slices.Collect(s.Find(pred, nil))[0]
		require.Len(t, got.Variants, 1)
		assert.Equal(t, laptop.Variants[0], got.Variants[0]) // Silver/15-inch
	})

	t.Run("absent variant is a silent no-op", func(t *testing.T) {
		// given
		s, _ := seededStore(t)
		pred := mustPredicate(t, Eq(FieldName, "Laptop"))
		// when
		matched := s.RemoveVariant(pred, "no-such-variant")
		// then
		assert.False(t, matched)
		got := slices.Collect(s.Find(pred, nil))[0]
		assert.Len(t, got.Variants, 2)
	})
}

func Test_MemoryStore_CreateIndex(t *testing.T) {
	t.Run("records declarations and derives names", func(t *testing.T) {
		// given
		s := NewMemoryStore()
		// when
		name, err := s.CreateIndex(IndexSpec{Field: FieldCategory})
		// then
		require.NoError(t, err)
		assert.Equal(t, "category_1", name)

		// when declared again
		again, err := s.CreateIndex(IndexSpec{Field: FieldCategory})
		// then the existing name is returned
		require.NoError(t, err)
		assert.Equal(t, name, again)
		assert.Len(t, s.Indexes(), 1)
	})

	t.Run("descending order is part of the name", func(t *testing.T) {
		// given
		s := NewMemoryStore()
		// when
		name, err := s.CreateIndex(IndexSpec{Field: FieldPrice, Descending: true})
		// then
		require.NoError(t, err)
		assert.Equal(t, "price_-1", name)
	})

	t.Run("rejects a non-indexable field", func(t *testing.T) {
		// given
		s := NewMemoryStore()
		// when
		_, err := s.CreateIndex(IndexSpec{Field: FieldDescription})
		// then
		assert.ErrorIs(t, err, ErrUnknownField)
	})
}
