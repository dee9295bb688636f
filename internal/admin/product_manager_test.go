package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GiftStore/internal/apperr"
	"GiftStore/internal/catalog"
)

func TestDeriveID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "two words", in: "Test Card", want: "test-card"},
		{name: "single word", in: "Netflix", want: "netflix"},
		{name: "whitespace run collapses", in: "Best   Buy\t Gift", want: "best-buy-gift"},
		{name: "edges are kept", in: " Apple iTunes ", want: "-apple-itunes-"},
		{name: "punctuation untouched", in: "Food & Drinks", want: "food-&-drinks"},
		{name: "non-breaking space", in: "Xbox\u00a0Live", want: "xbox-live"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveID(tt.in))
		})
	}
}

func TestAddProduct_Defaults(t *testing.T) {
	rec := &recorder{}
	pm := NewProductManager(rec, nil)

	p, err := pm.AddProduct(context.Background(), ProductInput{
		Name:        "Test Card",
		Category:    "Gaming",
		Description: "x",
	})
	require.NoError(t, err)

	assert.Equal(t, catalog.Product{
		ID:          "test-card",
		Name:        "Test Card",
		Image:       catalog.PlaceholderImage,
		MinAmount:   0,
		MaxAmount:   0,
		Category:    "Gaming",
		Description: "x",
		Featured:    false,
	}, p)
	assert.Equal(t, 1, pm.Count())
	assert.Equal(t, success("Product added successfully"), rec.last())
}

func TestAddProduct_OptionalFields(t *testing.T) {
	pm := NewProductManager(nil, nil)

	p, err := pm.AddProduct(context.Background(), ProductInput{
		Name:        "Gift Box",
		Category:    "Shopping",
		Description: "A box of gifts",
		MinAmount:   ptr[int64](10),
		MaxAmount:   ptr[int64](250),
		Featured:    ptr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), p.MinAmount)
	assert.Equal(t, int64(250), p.MaxAmount)
	assert.True(t, p.Featured)
}

func TestAddProduct_RequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		in    ProductInput
		field string
	}{
		{name: "empty name", in: ProductInput{Category: "Gaming", Description: "x"}, field: "name"},
		{name: "empty category", in: ProductInput{Name: "Card", Description: "x"}, field: "category"},
		{name: "empty description", in: ProductInput{Name: "Card", Category: "Gaming"}, field: "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			pm := NewProductManager(rec, nil)

			_, err := pm.AddProduct(context.Background(), tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrValidation))

			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "Please fill in all required fields", ve.Message)
			assert.Equal(t, "is required", ve.Fields[tt.field])

			assert.Equal(t, 0, pm.Count(), "state must be unchanged")
			assert.Equal(t, LevelError, rec.last().Level)
		})
	}
}

func TestAddProduct_AmountRange(t *testing.T) {
	pm := NewProductManager(nil, nil)
	ctx := context.Background()

	_, err := pm.AddProduct(ctx, ProductInput{
		Name: "Card", Category: "Gaming", Description: "x",
		MinAmount: ptr[int64](50), MaxAmount: ptr[int64](10),
	})
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "maxAmount")

	_, err = pm.AddProduct(ctx, ProductInput{
		Name: "Card", Category: "Gaming", Description: "x",
		MinAmount: ptr[int64](-5),
	})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "minAmount")

	assert.Equal(t, 0, pm.Count())
}

func TestAddProduct_DuplicateIDsLastWriteWins(t *testing.T) {
	pm := NewProductManager(nil, nil)
	ctx := context.Background()

	_, err := pm.AddProduct(ctx, ProductInput{Name: "Test Card", Category: "Gaming", Description: "first"})
	require.NoError(t, err)
	_, err = pm.AddProduct(ctx, ProductInput{Name: "test  card", Category: "Music", Description: "second"})
	require.NoError(t, err)

	assert.Equal(t, 2, pm.Count(), "no uniqueness check")

	p, ok := pm.Get(ctx, "test-card")
	require.True(t, ok)
	assert.Equal(t, "second", p.Description)

	assert.True(t, pm.DeleteProduct(ctx, "test-card"))
	assert.Equal(t, 0, pm.Count(), "delete removes every record with the id")
}

func TestDeleteProduct(t *testing.T) {
	rec := &recorder{}
	pm := NewProductManager(rec, nil)
	ctx := context.Background()

	_, err := pm.AddProduct(ctx, ProductInput{Name: "Keep Me", Category: "Gaming", Description: "x"})
	require.NoError(t, err)
	_, err = pm.AddProduct(ctx, ProductInput{Name: "Drop Me", Category: "Gaming", Description: "x"})
	require.NoError(t, err)

	assert.True(t, pm.DeleteProduct(ctx, "drop-me"))
	_, ok := pm.Get(ctx, "drop-me")
	assert.False(t, ok)
	assert.Equal(t, success("Product deleted successfully"), rec.last())

	assert.False(t, pm.DeleteProduct(ctx, "never-existed"))
	assert.Equal(t, 1, pm.Count(), "missing id leaves list unchanged")

	list := pm.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "keep-me", list[0].ID)
}

func TestProductManager_ListIsCopy(t *testing.T) {
	pm := NewProductManager(nil, nil)
	ctx := context.Background()

	assert.NotNil(t, pm.List(ctx))
	assert.Empty(t, pm.List(ctx))

	_, err := pm.AddProduct(ctx, ProductInput{Name: "Card", Category: "Gaming", Description: "x"})
	require.NoError(t, err)

	list := pm.List(ctx)
	list[0].Name = "mutated"

	p, _ := pm.Get(ctx, "card")
	assert.Equal(t, "Card", p.Name)
}

func TestProductManager_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	pm := NewProductManager(nil, m)
	ctx := context.Background()

	_, err := pm.AddProduct(ctx, ProductInput{Name: "Card", Category: "Gaming", Description: "x"})
	require.NoError(t, err)
	_, err = pm.AddProduct(ctx, ProductInput{Name: "", Category: "Gaming", Description: "x"})
	require.Error(t, err)
	pm.DeleteProduct(ctx, "card")
	pm.DeleteProduct(ctx, "card")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProductsAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProductsDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("add_product")))
}
