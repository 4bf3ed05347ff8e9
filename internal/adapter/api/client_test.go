package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proshop/storefront-client/internal/core/domain"
	"github.com/proshop/storefront-client/internal/port"
)

func TestFetchOrder_DecodesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/orders/A1/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"_id": "A1",
			"user": {"name": "John Doe", "email": "john@example.com"},
			"shippingAddress": {"address": "1 Main St", "city": "Boston", "postalCode": "02108", "country": "USA"},
			"orderItems": [{"product": "p1", "name": "Widget", "image": "/images/w.jpg", "price": 10, "qty": 2}],
			"paymentMethod": "PayPal",
			"shippingPrice": 5, "taxPrice": 1, "totalPrice": 26,
			"isPaid": false, "isDelivered": false
		}`))
	}))
	defer srv.Close()

	order, err := NewClient(srv.URL).FetchOrder(context.Background(), "A1")
	require.NoError(t, err)

	assert.Equal(t, "A1", order.ID)
	assert.Equal(t, "John Doe", order.User.Name)
	assert.Equal(t, "Boston", order.ShippingAddress.City)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, 2, order.OrderItems[0].Qty)
	assert.EqualValues(t, 26, order.TotalPrice)
	assert.False(t, order.IsPaid)
}

func TestFetchOrder_NotFoundCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Order does not exist"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchOrder(context.Background(), "missing")
	require.Error(t, err)

	var gwErr *port.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, http.StatusNotFound, gwErr.StatusCode)
	assert.Equal(t, "Order does not exist", gwErr.Detail)
}

func TestFetchOrder_NonJSONFaultKeepsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchOrder(context.Background(), "A1")

	var gwErr *port.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, http.StatusBadGateway, gwErr.StatusCode)
	assert.Empty(t, gwErr.Detail)
}

func TestFetchOrder_MalformedSuccessBodyIsDecodeFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_id": `))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchOrder(context.Background(), "A1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestCapturePayment_SendsResultAndDecodesOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/orders/A1/pay/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var result domain.PaymentResult
		require.NoError(t, json.NewDecoder(r.Body).Decode(&result))
		assert.Equal(t, "cap-1", result.ID)
		assert.Equal(t, "COMPLETED", result.Status)

		w.Write([]byte(`{"_id": "A1", "isPaid": true, "paidAt": "2026-08-29T10:00:00Z"}`))
	}))
	defer srv.Close()

	order, err := NewClient(srv.URL).CapturePayment(context.Background(), "A1", domain.PaymentResult{
		ID: "cap-1", Status: "COMPLETED", EmailAddress: "john@example.com",
	})
	require.NoError(t, err)
	assert.True(t, order.IsPaid)
	assert.Equal(t, "2026-08-29T10:00:00Z", order.PaidAt)
}

func TestListProducts_And_FetchProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products/":
			w.Write([]byte(`[{"_id": "p1", "name": "Airpods", "price": 89.99, "countInStock": 10}]`))
		case "/api/products/p1/":
			w.Write([]byte(`{"_id": "p1", "name": "Airpods", "price": 89.99, "countInStock": 10}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail": "Product not found"}`))
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Airpods", products[0].Name)

	product, err := client.FetchProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 89.99, product.Price)

	_, err = client.FetchProduct(context.Background(), "p9")
	var gwErr *port.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, "Product not found", gwErr.Detail)
}
