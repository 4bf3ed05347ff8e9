package action

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proshop/storefront-client/internal/core/domain"
	"github.com/proshop/storefront-client/internal/core/state"
)

// seqGateway records every fetch and blocks it until the test releases it,
// returning an order tagged with the call number.
type seqGateway struct {
	fakeGateway

	seqMu    sync.Mutex
	gates    []chan struct{}
	released int
}

func (g *seqGateway) FetchOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	g.seqMu.Lock()
	gate := make(chan struct{})
	g.gates = append(g.gates, gate)
	call := len(g.gates)
	g.seqMu.Unlock()

	<-gate
	return &domain.Order{ID: orderID, PaymentMethod: callTag(call)}, nil
}

func (g *seqGateway) calls() int {
	g.seqMu.Lock()
	defer g.seqMu.Unlock()
	return len(g.gates)
}

func (g *seqGateway) releaseCall(n int) {
	g.seqMu.Lock()
	defer g.seqMu.Unlock()
	close(g.gates[n-1])
}

func callTag(n int) string {
	return map[int]string{1: "call-1", 2: "call-2"}[n]
}

// A superseded fetch completing after its successor is discarded instead of
// overwriting the newer result.
func TestOrderFetcher_DiscardsStaleCompletion(t *testing.T) {
	st := state.New(state.Reducers(), nil)
	gw := &seqGateway{}
	f := NewOrderFetcher(gw)
	ctx := context.Background()

	f.Fetch(ctx, st, "A1")
	require.Eventually(t, func() bool { return gw.calls() == 1 }, 2*time.Second, 10*time.Millisecond)

	f.Fetch(ctx, st, "A1")
	require.Eventually(t, func() bool { return gw.calls() == 2 }, 2*time.Second, 10*time.Millisecond)

	// the newer request completes first and lands
	gw.releaseCall(2)
	require.Eventually(t, func() bool {
		od := state.OrderDetailsOf(st)
		return od.Order != nil && od.Order.PaymentMethod == "call-2"
	}, 2*time.Second, 10*time.Millisecond)

	// the stale completion is dropped, not dispatched
	gw.releaseCall(1)
	time.Sleep(50 * time.Millisecond)

	od := state.OrderDetailsOf(st)
	require.NotNil(t, od.Order)
	assert.Equal(t, "call-2", od.Order.PaymentMethod)
}

func TestOrderFetcher_RequestDispatchedBeforeReturn(t *testing.T) {
	st := state.New(state.Reducers(), nil)
	gw := &seqGateway{}
	f := NewOrderFetcher(gw)

	f.Fetch(context.Background(), st, "A1")

	assert.True(t, state.OrderDetailsOf(st).Loading)
	require.Eventually(t, func() bool { return gw.calls() == 1 }, 2*time.Second, 10*time.Millisecond)
	gw.releaseCall(1)
}

func TestOrderFetcher_IndependentKeysDoNotInterfere(t *testing.T) {
	st := state.New(state.Reducers(), nil)
	gw := &seqGateway{}
	f := NewOrderFetcher(gw)
	ctx := context.Background()

	f.Fetch(ctx, st, "A1")
	require.Eventually(t, func() bool { return gw.calls() == 1 }, 2*time.Second, 10*time.Millisecond)
	f.Fetch(ctx, st, "A2")
	require.Eventually(t, func() bool { return gw.calls() == 2 }, 2*time.Second, 10*time.Millisecond)

	// A1's completion is still the latest for its own key
	gw.releaseCall(1)
	require.Eventually(t, func() bool {
		od := state.OrderDetailsOf(st)
		return od.Order != nil && od.Order.ID == "A1"
	}, 2*time.Second, 10*time.Millisecond)

	gw.releaseCall(2)
	require.Eventually(t, func() bool {
		od := state.OrderDetailsOf(st)
		return od.Order != nil && od.Order.ID == "A2"
	}, 2*time.Second, 10*time.Millisecond)
}
