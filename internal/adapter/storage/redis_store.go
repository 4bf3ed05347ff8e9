package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/proshop/storefront-client/internal/core/domain"
)

const cartKey = "cart:items"

// RedisCartStore keeps the cart slot in a single Redis string key.
type RedisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

func (s *RedisCartStore) Load(ctx context.Context) ([]domain.CartItem, error) {
	raw, err := s.client.Get(ctx, cartKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.CartItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart key: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Str("key", cartKey).Msg("storage: corrupt cart key, starting empty")
		return []domain.CartItem{}, nil
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items, nil
}

func (s *RedisCartStore) Save(ctx context.Context, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return s.client.Set(ctx, cartKey, payload, 0).Err()
}
