// Package workflow drives the order screen's state machine: fetch the
// order, bring up the payment capability for unpaid orders, and reconcile a
// capture back into fresh order data by refetching from the server of
// record.
package workflow

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/proshop/storefront-client/internal/core/action"
	"github.com/proshop/storefront-client/internal/core/domain"
	"github.com/proshop/storefront-client/internal/core/state"
	"github.com/proshop/storefront-client/internal/port"
)

// Phase is the controller's observable position in the order workflow.
type Phase string

const (
	PhaseNoOrder      Phase = "NO_ORDER"
	PhaseLoadingOrder Phase = "LOADING_ORDER"
	PhaseSDKPending   Phase = "ORDER_LOADED_UNPAID_SDK_PENDING"
	PhaseSDKReady     Phase = "ORDER_LOADED_UNPAID_SDK_READY"
	PhaseOrderPaid    Phase = "ORDER_LOADED_PAID"
	PhaseError        Phase = "ERROR"
)

// Controller observes the store and moves the workflow for a single order id.
// All transition evaluation happens on one goroutine fed by a coalescing
// wake channel, so evaluations never interleave and dispatching from a
// transition cannot re-enter the evaluator.
type Controller struct {
	store   *state.Store
	fetcher *action.OrderFetcher
	gw      port.OrderGateway
	loader  port.CapabilityLoader
	orderID string

	fatal func(error)

	wake chan struct{}
	done chan struct{}

	unsub    func()
	stopOnce sync.Once

	sdkReady  atomic.Bool
	requested atomic.Bool // capability load requested

	mu    sync.Mutex
	phase Phase
}

type Option func(*Controller)

// WithFatalHandler replaces the default fatal-fault handler. The default
// logs at fatal level, which terminates the process: a failed capability
// load leaves the payment flow unable to proceed.
func WithFatalHandler(fn func(error)) Option {
	return func(c *Controller) { c.fatal = fn }
}

func New(st *state.Store, gw port.OrderGateway, loader port.CapabilityLoader, orderID string, opts ...Option) *Controller {
	c := &Controller{
		store:   st,
		fetcher: action.NewOrderFetcher(gw),
		gw:      gw,
		loader:  loader,
		orderID: orderID,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		phase:   PhaseNoOrder,
		fatal: func(err error) {
			log.Fatal().Err(err).Msg("workflow: payment capability load failed")
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start subscribes to the store and begins evaluating transitions. Stop or
// cancel ctx to end the loop.
func (c *Controller) Start(ctx context.Context) {
	c.unsub = c.store.Subscribe(c.kick)
	go c.loop(ctx)
	c.kick()
}

// Stop unsubscribes and ends the evaluation loop.
func (c *Controller) Stop() {
	c.stopOnce.Do(func() {
		if c.unsub != nil {
			c.unsub()
		}
		close(c.done)
	})
}

// Phase returns the current workflow phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// HandleCapture forwards a capture result from the payment buttons to the
// pay dispatcher. The result is consumed exactly once and not retained.
// Captures arriving outside SDK_READY are dropped.
func (c *Controller) HandleCapture(ctx context.Context, result domain.PaymentResult) {
	if c.Phase() != PhaseSDKReady {
		log.Warn().Str("order_id", c.orderID).Str("phase", string(c.Phase())).
			Msg("workflow: capture ignored outside SDK_READY")
		return
	}
	go action.PayOrder(ctx, c.store, c.gw, c.orderID, result)
}

func (c *Controller) kick() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

func (c *Controller) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case <-c.wake:
			c.observe(ctx)
		}
	}
}

// observe evaluates the transition table against current slice state. It
// runs only on the loop goroutine.
func (c *Controller) observe(ctx context.Context) {
	od := state.OrderDetailsOf(c.store)
	op := state.OrderPayOf(c.store)

	switch {
	case od.Error != "":
		// Terminal: the error stays rendered, nothing retries.
		c.setPhase(PhaseError)

	case od.Loading:
		c.setPhase(PhaseLoadingOrder)

	case od.Order == nil || op.Success || od.Order.ID != c.orderID:
		// No order yet, a capture just landed, or the loaded order is not
		// the requested one. Clear the pay slice before refetching so the
		// success flag cannot trigger a second refetch.
		c.setPhase(PhaseLoadingOrder)
		c.store.Dispatch(state.Action{Type: state.OrderPayReset})
		c.fetcher.Fetch(ctx, c.store, c.orderID)

	case !od.Order.IsPaid:
		if c.sdkReady.Load() || c.loader.Loaded() {
			// Capability already present: ready without injecting.
			c.sdkReady.Store(true)
			c.setPhase(PhaseSDKReady)
			return
		}
		c.setPhase(PhaseSDKPending)
		if c.requested.CompareAndSwap(false, true) {
			c.loader.EnsureLoaded(ctx, c.onCapability)
		}

	default:
		c.setPhase(PhaseOrderPaid)
	}
}

// onCapability receives the loader's one-shot completion signal.
func (c *Controller) onCapability(err error) {
	if err != nil {
		// Fatal and unrecoverable: the phase stays SDK_PENDING and the
		// payment buttons never come up.
		c.fatal(err)
		return
	}
	c.sdkReady.Store(true)
	c.kick()
}

func (c *Controller) setPhase(p Phase) {
	c.mu.Lock()
	prev := c.phase
	c.phase = p
	c.mu.Unlock()
	if prev != p {
		log.Debug().Str("order_id", c.orderID).Str("from", string(prev)).Str("to", string(p)).
			Msg("workflow: phase transition")
	}
}
