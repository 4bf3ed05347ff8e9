package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/proshop/storefront-client/internal/adapter/api"
	"github.com/proshop/storefront-client/internal/adapter/paypal"
	"github.com/proshop/storefront-client/internal/adapter/storage"
	"github.com/proshop/storefront-client/internal/config"
	"github.com/proshop/storefront-client/internal/core/domain"
	"github.com/proshop/storefront-client/internal/core/state"
	"github.com/proshop/storefront-client/internal/core/workflow"
	"github.com/proshop/storefront-client/internal/port"
)

func main() {
	var (
		orderID = flag.String("order", "1", "order id to load")
		capture = flag.Bool("capture", false, "simulate the buyer approving payment once the SDK is ready")
		envFile = flag.String("env", "", "optional .env file")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "storefront-client").Logger()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down...")
		cancel()
	}()

	cartStore, closeCart := newCartStore(ctx, cfg)
	defer closeCart()

	items, err := cartStore.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("cart storage unavailable, starting with an empty cart")
		items = nil
	}
	log.Info().Int("items", len(items)).Str("backend", cfg.Cart.Backend).Msg("cart loaded")

	store := state.New(state.Reducers(), map[string]any{
		state.SliceCart: state.CartState{Items: items},
	})

	gateway := api.NewClient(cfg.APIBaseURL)
	loader := paypal.NewLoader(cfg.PayPal.ClientID, cfg.PayPal.Currency)

	ctrl := workflow.New(store, gateway, loader, *orderID)
	ctrl.Start(ctx)
	defer ctrl.Stop()

	runUntilSettled(ctx, store, ctrl, *orderID, *capture)
}

// runUntilSettled renders phase changes and drives the simulated capture,
// exiting once the workflow reaches a terminal phase.
func runUntilSettled(ctx context.Context, store *state.Store, ctrl *workflow.Controller, orderID string, capture bool) {
	ticks := make(chan struct{}, 1)
	unsub := store.Subscribe(func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	defer unsub()

	captured := false
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
		case <-ticker.C:
		}

		switch ctrl.Phase() {
		case workflow.PhaseSDKReady:
			if capture && !captured {
				captured = true
				log.Info().Str("order_id", orderID).Msg("sdk ready, sending capture")
				ctrl.HandleCapture(ctx, domain.PaymentResult{
					ID:           uuid.NewString(),
					Status:       "COMPLETED",
					UpdateTime:   time.Now().UTC().Format(time.RFC3339),
					EmailAddress: "buyer@example.com",
				})
			}
		case workflow.PhaseOrderPaid:
			renderOrder(store)
			return
		case workflow.PhaseError:
			log.Error().Str("error", state.OrderDetailsOf(store).Error).Msg("order could not be loaded")
			return
		}
	}
}

func renderOrder(store *state.Store) {
	order := state.OrderDetailsOf(store).Order
	if order == nil {
		return
	}
	log.Info().
		Str("order_id", order.ID).
		Str("items", domain.FormatAmount(order.ItemsSubtotal())).
		Str("shipping", domain.FormatAmount(order.ShippingPrice)).
		Str("tax", domain.FormatAmount(order.TaxPrice)).
		Str("total", domain.FormatAmount(order.TotalPrice)).
		Str("paid_at", order.PaidAt).
		Msg("order paid")
}

// newCartStore builds the configured cart persistence backend and its
// cleanup function.
func newCartStore(ctx context.Context, cfg *config.Config) (port.CartStore, func()) {
	switch cfg.Cart.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Cart.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect redis")
		}
		log.Info().Msg("connected to redis")
		return storage.NewRedisCartStore(rdb), func() { rdb.Close() }

	case "mysql":
		db, err := sql.Open("mysql", cfg.Cart.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect mysql")
		}
		db.SetMaxOpenConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ping mysql")
		}
		log.Info().Msg("connected to mysql")
		return storage.NewMySQLCartStore(db), func() { db.Close() }

	default:
		return storage.NewFileCartStore(cfg.Cart.File), func() {}
	}
}
