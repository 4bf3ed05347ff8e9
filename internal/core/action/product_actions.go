package action

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/proshop/storefront-client/internal/core/state"
	"github.com/proshop/storefront-client/internal/port"
)

// ListProducts loads the catalog page into the productList slice.
func ListProducts(ctx context.Context, st *state.Store, gw port.OrderGateway) {
	st.Dispatch(state.Action{Type: state.ProductListRequest})

	products, err := gw.ListProducts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("action: product list fetch failed")
		st.Dispatch(state.Action{Type: state.ProductListFail, Payload: ErrorMessage(err)})
		return
	}

	st.Dispatch(state.Action{Type: state.ProductListSuccess, Payload: products})
}

// GetProduct loads a single product into the productDetails slice.
func GetProduct(ctx context.Context, st *state.Store, gw port.OrderGateway, productID string) {
	st.Dispatch(state.Action{Type: state.ProductDetailsRequest})

	product, err := gw.FetchProduct(ctx, productID)
	if err != nil {
		log.Warn().Err(err).Str("product_id", productID).Msg("action: product fetch failed")
		st.Dispatch(state.Action{Type: state.ProductDetailsFail, Payload: ErrorMessage(err)})
		return
	}

	st.Dispatch(state.Action{Type: state.ProductDetailsSuccess, Payload: product})
}
