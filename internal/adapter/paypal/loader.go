// Package paypal loads the external payment SDK resource. The loader owns
// the presence state that the original integration kept in an ambient
// global: loaded, in-flight, and the callbacks waiting on completion.
package paypal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultSDKURL = "https://www.paypal.com/sdk/js"

// ErrLoadFailed marks a capability load fault. It is fatal to the payment
// flow and never retried.
var ErrLoadFailed = errors.New("payment capability could not be loaded")

// Loader fetches the SDK resource at most once per process. Concurrent
// EnsureLoaded calls while the fetch is in flight queue their callbacks
// instead of fetching again; presence is tracked by the loaded field, not a
// request counter.
type Loader struct {
	clientID string
	currency string
	sdkURL   string
	http     *http.Client

	mu      sync.Mutex
	loaded  bool
	loading bool
	failed  error
	pending []func(error)
}

type Option func(*Loader)

// WithSDKURL overrides the resource location (stub servers, tests).
func WithSDKURL(u string) Option {
	return func(l *Loader) { l.sdkURL = u }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(l *Loader) { l.http = hc }
}

func NewLoader(clientID, currency string, opts ...Option) *Loader {
	l := &Loader{
		clientID: clientID,
		currency: currency,
		sdkURL:   defaultSDKURL,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Loaded reports whether the capability is present.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// EnsureLoaded invokes onDone with nil once the capability is ready, or
// with the load error. Already-resolved state invokes onDone synchronously,
// on the caller's goroutine. Only the first call starts a fetch.
func (l *Loader) EnsureLoaded(ctx context.Context, onDone func(error)) {
	l.mu.Lock()
	switch {
	case l.loaded:
		l.mu.Unlock()
		onDone(nil)
		return
	case l.failed != nil:
		err := l.failed
		l.mu.Unlock()
		onDone(err)
		return
	}

	l.pending = append(l.pending, onDone)
	if l.loading {
		l.mu.Unlock()
		return
	}
	l.loading = true
	l.mu.Unlock()

	go l.inject(ctx)
}

func (l *Loader) inject(ctx context.Context) {
	err := l.fetchResource(ctx)

	l.mu.Lock()
	if err != nil {
		l.failed = fmt.Errorf("%w: %v", ErrLoadFailed, err)
		err = l.failed
	} else {
		l.loaded = true
	}
	callbacks := l.pending
	l.pending = nil
	l.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Msg("paypal: sdk resource load failed")
	} else {
		log.Debug().Msg("paypal: sdk resource loaded")
	}

	for _, cb := range callbacks {
		cb(err)
	}
}

// fetchResource retrieves the SDK script parameterized by the integration
// identifier and currency.
func (l *Loader) fetchResource(ctx context.Context) error {
	query := url.Values{}
	query.Set("client-id", l.clientID)
	query.Set("currency", l.currency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.sdkURL+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	_, err = io.Copy(io.Discard, resp.Body)
	return err
}
