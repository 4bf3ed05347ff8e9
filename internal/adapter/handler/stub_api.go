// Package handler serves a stub of the storefront backend: enough of the
// order and product API for the client to run standalone.
package handler

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/proshop/storefront-client/internal/core/domain"
)

type StubAPI struct {
	mu       sync.Mutex
	products map[string]domain.Product
	orders   map[string]*domain.Order

	// serves a placeholder payment SDK script so the capability loader can
	// run against the stub too
	sdkScript []byte
}

// NewStubAPI returns a stub preloaded with a small fixture catalog and one
// unpaid order.
func NewStubAPI() *StubAPI {
	s := &StubAPI{
		products:  make(map[string]domain.Product),
		orders:    make(map[string]*domain.Order),
		sdkScript: []byte("/* payment sdk stub */\n"),
	}
	s.SeedProduct(domain.Product{
		ID: "1", Name: "Airpods Wireless Bluetooth Headphones",
		Image: "/images/airpods.jpg", Brand: "Apple", Category: "Electronics",
		Price: 89.99, CountInStock: 10, Rating: 4.5, NumReviews: 12,
	})
	s.SeedProduct(domain.Product{
		ID: "2", Name: "iPhone 13 Pro 256GB Memory",
		Image: "/images/phone.jpg", Brand: "Apple", Category: "Electronics",
		Price: 599.99, CountInStock: 7, Rating: 4.0, NumReviews: 8,
	})
	s.SeedOrder(&domain.Order{
		ID:   "1",
		User: domain.OrderUser{Name: "John Doe", Email: "john@example.com"},
		ShippingAddress: domain.ShippingAddress{
			Address: "1 Main St", City: "Boston", PostalCode: "02108", Country: "USA",
		},
		OrderItems: []domain.OrderItem{
			{Product: "1", Name: "Airpods Wireless Bluetooth Headphones",
				Image: "/images/airpods.jpg", Price: 89.99, Qty: 1},
		},
		PaymentMethod: "PayPal",
		ItemsPrice:    89.99,
		ShippingPrice: 10,
		TaxPrice:      7.37,
		TotalPrice:    107.36,
	})
	return s
}

// SeedProduct inserts or replaces a catalog product.
func (s *StubAPI) SeedProduct(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// SeedOrder inserts or replaces an order.
func (s *StubAPI) SeedOrder(o *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
}

// Order returns a copy of a stored order, for assertions.
func (s *StubAPI) Order(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, false
	}
	return *o, true
}

func (s *StubAPI) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", s.healthCheck)
	r.Get("/api/products/", s.listProducts)
	r.Get("/api/products/{id}/", s.getProduct)
	r.Get("/api/orders/{id}/", s.getOrder)
	r.Put("/api/orders/{id}/pay/", s.payOrder)
	r.Get("/sdk/js", s.sdkResource)
	return r
}

func (s *StubAPI) listProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	products := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, products)
}

func (s *StubAPI) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	p, ok := s.products[id]
	s.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *StubAPI) getOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	o, ok := s.orders[id]
	var copied domain.Order
	if ok {
		copied = *o
	}
	s.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusNotFound, "Order does not exist")
		return
	}
	writeJSON(w, http.StatusOK, copied)
}

func (s *StubAPI) payOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var result domain.PaymentResult
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid payment result")
		return
	}
	if result.ID == "" {
		writeDetail(w, http.StatusBadRequest, "Payment result id is required")
		return
	}

	s.mu.Lock()
	o, ok := s.orders[id]
	if ok {
		o.IsPaid = true
		o.PaidAt = time.Now().UTC().Format(time.RFC3339)
	}
	var copied domain.Order
	if ok {
		copied = *o
	}
	s.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusNotFound, "Order does not exist")
		return
	}

	log.Info().Str("order_id", id).Str("capture_id", result.ID).Msg("stub: order marked paid")
	writeJSON(w, http.StatusOK, copied)
}

func (s *StubAPI) sdkResource(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("client-id") == "" {
		writeDetail(w, http.StatusBadRequest, "client-id is required")
		return
	}
	w.Header().Set("Content-Type", "application/javascript")
	w.WriteHeader(http.StatusOK)
	w.Write(s.sdkScript)
}

func (s *StubAPI) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
