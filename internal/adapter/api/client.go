// Package api implements the storefront gateway over the backend's JSON
// HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/proshop/storefront-client/internal/core/domain"
	"github.com/proshop/storefront-client/internal/port"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests, custom
// transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) FetchOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%s/", orderID), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CapturePayment(ctx context.Context, orderID string, result domain.PaymentResult) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%s/pay/", orderID), result, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) FetchProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%s/", productID), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// do performs one JSON round trip. Non-2xx responses become a
// *port.GatewayError carrying the server's detail message when one can be
// decoded; a malformed 2xx body surfaces as a decode error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeFault(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeFault(resp *http.Response) error {
	gwErr := &port.GatewayError{StatusCode: resp.StatusCode}

	var fault struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&fault); err == nil {
		gwErr.Detail = fault.Detail
	}
	return gwErr
}
