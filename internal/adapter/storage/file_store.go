// Package storage provides the cart-slot persistence adapters.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/proshop/storefront-client/internal/core/domain"
)

// FileCartStore keeps the cart slot in a JSON file, the durable-local
// analog of the browser's storage slot.
type FileCartStore struct {
	path string
}

func NewFileCartStore(path string) *FileCartStore {
	return &FileCartStore{path: path}
}

// Load reads the slot. A missing file is an empty cart; a corrupt file is
// recovered as an empty cart with a warning, never an error.
func (s *FileCartStore) Load(ctx context.Context) ([]domain.CartItem, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.CartItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart file: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("storage: corrupt cart file, starting empty")
		return []domain.CartItem{}, nil
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items, nil
}

func (s *FileCartStore) Save(ctx context.Context, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cart dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write cart file: %w", err)
	}
	return nil
}
