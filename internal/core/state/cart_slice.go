package state

import "github.com/proshop/storefront-client/internal/core/domain"

// CartState holds the cart slice. It is the one slice seeded from durable
// storage at store construction.
type CartState struct {
	Items []domain.CartItem
}

// CartReducer merges added items by product reference: adding a product
// already in the cart replaces its entry. Both branches build a fresh
// slice so prior state values stay untouched.
func CartReducer(slice any, action Action) any {
	st, _ := slice.(CartState)
	switch action.Type {
	case CartAddItem:
		item, ok := action.Payload.(domain.CartItem)
		if !ok {
			return st
		}
		next := make([]domain.CartItem, 0, len(st.Items)+1)
		replaced := false
		for _, existing := range st.Items {
			if existing.Product == item.Product {
				next = append(next, item)
				replaced = true
				continue
			}
			next = append(next, existing)
		}
		if !replaced {
			next = append(next, item)
		}
		return CartState{Items: next}
	case CartRemoveItem:
		productID, ok := action.Payload.(string)
		if !ok {
			return st
		}
		next := make([]domain.CartItem, 0, len(st.Items))
		for _, existing := range st.Items {
			if existing.Product != productID {
				next = append(next, existing)
			}
		}
		return CartState{Items: next}
	default:
		return st
	}
}

func CartOf(s *Store) CartState {
	v, _ := s.Slice(SliceCart).(CartState)
	return v
}
