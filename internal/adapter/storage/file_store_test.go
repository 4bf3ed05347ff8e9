package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proshop/storefront-client/internal/core/domain"
)

func testCartItems() []domain.CartItem {
	return []domain.CartItem{
		{Product: "p1", Name: "Airpods", Image: "/images/airpods.jpg", Price: 89.99, Qty: 2, CountInStock: 10},
		{Product: "p2", Name: "Phone", Image: "/images/phone.jpg", Price: 599.99, Qty: 1, CountInStock: 7},
	}
}

func TestFileCartStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := NewFileCartStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testCartItems()))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, testCartItems(), loaded)
}

func TestFileCartStore_MissingSlotIsEmptyCart(t *testing.T) {
	store := NewFileCartStore(filepath.Join(t.TempDir(), "nope.json"))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
	assert.NotNil(t, loaded)
}

func TestFileCartStore_CorruptSlotIsEmptyCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"`), 0o644))

	loaded, err := NewFileCartStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileCartStore_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cart.json")
	store := NewFileCartStore(path)

	require.NoError(t, store.Save(context.Background(), nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestFileCartStore_SaveOverwritesSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := NewFileCartStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testCartItems()))
	require.NoError(t, store.Save(ctx, testCartItems()[:1]))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "p1", loaded[0].Product)
}
