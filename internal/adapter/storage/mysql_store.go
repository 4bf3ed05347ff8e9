package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/proshop/storefront-client/internal/core/domain"
)

const cartSlot = "default"

// MySQLCartStore keeps the cart slot in a single snapshot row:
//
//	CREATE TABLE cart_snapshots (
//	    slot       VARCHAR(64) PRIMARY KEY,
//	    items      TEXT NOT NULL,
//	    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	        ON UPDATE CURRENT_TIMESTAMP
//	);
type MySQLCartStore struct {
	db *sql.DB
}

func NewMySQLCartStore(db *sql.DB) *MySQLCartStore {
	return &MySQLCartStore{db: db}
}

func (s *MySQLCartStore) Load(ctx context.Context) ([]domain.CartItem, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT items FROM cart_snapshots WHERE slot = ?`, cartSlot,
	).Scan(&raw)

	if errors.Is(err, sql.ErrNoRows) {
		return []domain.CartItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query cart snapshot: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Str("slot", cartSlot).Msg("storage: corrupt cart snapshot, starting empty")
		return []domain.CartItem{}, nil
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items, nil
}

func (s *MySQLCartStore) Save(ctx context.Context, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO cart_snapshots (slot, items) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE items = VALUES(items)`,
		cartSlot, payload,
	)
	if err != nil {
		return fmt.Errorf("upsert cart snapshot: %w", err)
	}
	return nil
}
