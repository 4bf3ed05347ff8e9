package state

import "github.com/proshop/storefront-client/internal/core/domain"

// OrderDetailsState holds the orderDetails slice. At most one of Loading
// and a non-empty Error is set; Order is meaningful only when neither is.
type OrderDetailsState struct {
	Loading bool
	Order   *domain.Order
	Error   string
}

func OrderDetailsReducer(slice any, action Action) any {
	st, _ := slice.(OrderDetailsState)
	switch action.Type {
	case OrderDetailsRequest:
		return OrderDetailsState{Loading: true}
	case OrderDetailsSuccess:
		order, _ := action.Payload.(*domain.Order)
		return OrderDetailsState{Order: order}
	case OrderDetailsFail:
		msg, _ := action.Payload.(string)
		return OrderDetailsState{Error: msg}
	default:
		return st
	}
}

// OrderPayState holds the orderPay slice. Success flips to true on a
// recorded capture and is cleared by OrderPayReset before the reconciling
// refetch.
type OrderPayState struct {
	Loading bool
	Success bool
	Error   string
}

func OrderPayReducer(slice any, action Action) any {
	st, _ := slice.(OrderPayState)
	switch action.Type {
	case OrderPayRequest:
		return OrderPayState{Loading: true}
	case OrderPaySuccess:
		return OrderPayState{Success: true}
	case OrderPayFail:
		msg, _ := action.Payload.(string)
		return OrderPayState{Error: msg}
	case OrderPayReset:
		return OrderPayState{}
	default:
		return st
	}
}

// OrderDetailsOf reads the orderDetails slice from the store.
func OrderDetailsOf(s *Store) OrderDetailsState {
	v, _ := s.Slice(SliceOrderDetails).(OrderDetailsState)
	return v
}

// OrderPayOf reads the orderPay slice from the store.
func OrderPayOf(s *Store) OrderPayState {
	v, _ := s.Slice(SliceOrderPay).(OrderPayState)
	return v
}
