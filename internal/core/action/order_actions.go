// Package action holds the async dispatchers: impure units that call the
// storefront gateway and dispatch lifecycle actions into the store. Each
// invocation dispatches its REQUEST first, then exactly one of SUCCESS or
// FAIL. Overlapping invocations for the same key are not de-duplicated
// here; whichever completion dispatches last wins the slice. Use
// OrderFetcher when stale completions must be discarded.
package action

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/proshop/storefront-client/internal/core/domain"
	"github.com/proshop/storefront-client/internal/core/state"
	"github.com/proshop/storefront-client/internal/port"
)

// ErrorMessage derives the user-facing text stored on a slice from a failed
// gateway call: the server's structured detail when present, the raw fault
// text otherwise.
func ErrorMessage(err error) string {
	var gwErr *port.GatewayError
	if errors.As(err, &gwErr) && gwErr.Detail != "" {
		return gwErr.Detail
	}
	return err.Error()
}

// GetOrderDetails loads an order into the orderDetails slice.
func GetOrderDetails(ctx context.Context, st *state.Store, gw port.OrderGateway, orderID string) {
	st.Dispatch(state.Action{Type: state.OrderDetailsRequest})

	if orderID == "" {
		st.Dispatch(state.Action{Type: state.OrderDetailsFail, Payload: "order id is required"})
		return
	}

	order, err := gw.FetchOrder(ctx, orderID)
	if err != nil {
		log.Warn().Err(err).Str("order_id", orderID).Msg("action: order details fetch failed")
		st.Dispatch(state.Action{Type: state.OrderDetailsFail, Payload: ErrorMessage(err)})
		return
	}

	st.Dispatch(state.Action{Type: state.OrderDetailsSuccess, Payload: order})
}

// PayOrder records a payment capture against the order. It never touches
// the orderDetails slice: reconciling the success into fresh order data is
// the workflow controller's job.
func PayOrder(ctx context.Context, st *state.Store, gw port.OrderGateway, orderID string, result domain.PaymentResult) {
	st.Dispatch(state.Action{Type: state.OrderPayRequest})

	if _, err := gw.CapturePayment(ctx, orderID, result); err != nil {
		log.Warn().Err(err).Str("order_id", orderID).Msg("action: payment capture failed")
		st.Dispatch(state.Action{Type: state.OrderPayFail, Payload: ErrorMessage(err)})
		return
	}

	st.Dispatch(state.Action{Type: state.OrderPaySuccess})
}
