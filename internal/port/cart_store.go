package port

import (
	"context"

	"github.com/proshop/storefront-client/internal/core/domain"
)

// CartStore persists the cart fragment in a single named slot of durable
// storage. Implementations recover from a corrupt slot by returning an
// empty cart, never an error.
type CartStore interface {
	// Load reads the persisted cart; absent or unreadable slots yield an
	// empty slice
	Load(ctx context.Context) ([]domain.CartItem, error)

	// Save overwrites the slot with the given items
	Save(ctx context.Context, items []domain.CartItem) error
}
