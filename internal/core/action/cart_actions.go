package action

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/proshop/storefront-client/internal/core/domain"
	"github.com/proshop/storefront-client/internal/core/state"
	"github.com/proshop/storefront-client/internal/port"
)

// AddToCart resolves the product, merges it into the cart slice and rewrites
// the persisted cart slot. Qty is clamped to [1, product stock]. A persist
// failure is logged, not returned: the in-memory cart already holds the item.
func AddToCart(ctx context.Context, st *state.Store, gw port.OrderGateway, cs port.CartStore, productID string, qty int) error {
	product, err := gw.FetchProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}

	if qty < 1 {
		qty = 1
	}
	if qty > product.CountInStock {
		qty = product.CountInStock
	}
	if product.CountInStock < 1 {
		return fmt.Errorf("add to cart: product %s is out of stock", productID)
	}

	st.Dispatch(state.Action{Type: state.CartAddItem, Payload: domain.CartItem{
		Product:      product.ID,
		Name:         product.Name,
		Image:        product.Image,
		Price:        product.Price,
		Qty:          qty,
		CountInStock: product.CountInStock,
	}})

	persistCart(ctx, st, cs)
	return nil
}

// RemoveFromCart drops the product from the cart slice and rewrites the
// persisted slot.
func RemoveFromCart(ctx context.Context, st *state.Store, cs port.CartStore, productID string) {
	st.Dispatch(state.Action{Type: state.CartRemoveItem, Payload: productID})
	persistCart(ctx, st, cs)
}

func persistCart(ctx context.Context, st *state.Store, cs port.CartStore) {
	items := state.CartOf(st).Items
	if err := cs.Save(ctx, items); err != nil {
		log.Warn().Err(err).Int("items", len(items)).Msg("action: cart persist failed")
	}
}
