package action

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proshop/storefront-client/internal/core/domain"
	"github.com/proshop/storefront-client/internal/core/state"
)

func TestListProducts_FillsProductList(t *testing.T) {
	st := state.New(state.Reducers(), nil)
	gw := newFakeGateway()
	gw.products["p1"] = domain.Product{ID: "p1", Name: "Airpods", Price: 89.99}
	gw.products["p2"] = domain.Product{ID: "p2", Name: "Phone", Price: 599.99}

	ListProducts(context.Background(), st, gw)

	pl := state.ProductListOf(st)
	assert.False(t, pl.Loading)
	assert.Empty(t, pl.Error)
	assert.Len(t, pl.Products, 2)
}

func TestGetProduct_Lifecycle(t *testing.T) {
	st := state.New(state.Reducers(), nil)
	gw := newFakeGateway()
	gw.products["p1"] = domain.Product{ID: "p1", Name: "Airpods"}

	GetProduct(context.Background(), st, gw, "p1")

	pd := state.ProductDetailsOf(st)
	require.NotNil(t, pd.Product)
	assert.Equal(t, "Airpods", pd.Product.Name)
}

func TestGetProduct_FailStoresDetail(t *testing.T) {
	st := state.New(state.Reducers(), nil)
	gw := newFakeGateway()

	GetProduct(context.Background(), st, gw, "nope")

	pd := state.ProductDetailsOf(st)
	assert.Nil(t, pd.Product)
	assert.Equal(t, "Product not found", pd.Error)
}
