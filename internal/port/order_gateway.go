package port

import (
	"context"
	"fmt"

	"github.com/proshop/storefront-client/internal/core/domain"
)

// OrderGateway is the remote storefront API as the client consumes it.
type OrderGateway interface {
	// FetchOrder retrieves an order by its server-issued identifier
	FetchOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// CapturePayment records a payment capture against the order and
	// returns the updated order
	CapturePayment(ctx context.Context, orderID string, result domain.PaymentResult) (*domain.Order, error)

	// ListProducts returns the product catalog page
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// FetchProduct retrieves a single product by identifier
	FetchProduct(ctx context.Context, productID string) (*domain.Product, error)
}

// GatewayError is a structured fault from the storefront API: a non-2xx
// response, optionally carrying the server's detail message.
type GatewayError struct {
	StatusCode int
	Detail     string
}

func (e *GatewayError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}
