package action

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/proshop/storefront-client/internal/core/state"
	"github.com/proshop/storefront-client/internal/port"
)

// OrderFetcher issues order-details fetches carrying a generation token per
// order id. A completion whose token is no longer the latest issued for its
// id is discarded instead of dispatched, so overlapping fetches cannot
// leave a stale order in the slice.
type OrderFetcher struct {
	gw port.OrderGateway

	mu  sync.Mutex
	gen map[string]uint64
}

func NewOrderFetcher(gw port.OrderGateway) *OrderFetcher {
	return &OrderFetcher{gw: gw, gen: make(map[string]uint64)}
}

// Fetch dispatches ORDER_DETAILS_REQUEST synchronously, then resolves the
// order on a new goroutine. Callers observing Loading==true after Fetch
// returns can rely on a terminal dispatch unless a newer Fetch for the same
// id superseded this one.
func (f *OrderFetcher) Fetch(ctx context.Context, st *state.Store, orderID string) {
	f.mu.Lock()
	f.gen[orderID]++
	token := f.gen[orderID]
	f.mu.Unlock()

	st.Dispatch(state.Action{Type: state.OrderDetailsRequest})

	go func() {
		order, err := f.gw.FetchOrder(ctx, orderID)

		if !f.latest(orderID, token) {
			log.Debug().Str("order_id", orderID).Uint64("token", token).
				Msg("action: discarding stale order fetch completion")
			return
		}

		if err != nil {
			log.Warn().Err(err).Str("order_id", orderID).Msg("action: order details fetch failed")
			st.Dispatch(state.Action{Type: state.OrderDetailsFail, Payload: ErrorMessage(err)})
			return
		}
		st.Dispatch(state.Action{Type: state.OrderDetailsSuccess, Payload: order})
	}()
}

func (f *OrderFetcher) latest(orderID string, token uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gen[orderID] == token
}
