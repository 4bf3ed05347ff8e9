package state

import "github.com/proshop/storefront-client/internal/core/domain"

type ProductListState struct {
	Loading  bool
	Products []domain.Product
	Error    string
}

func ProductListReducer(slice any, action Action) any {
	st, _ := slice.(ProductListState)
	switch action.Type {
	case ProductListRequest:
		return ProductListState{Loading: true}
	case ProductListSuccess:
		products, _ := action.Payload.([]domain.Product)
		return ProductListState{Products: products}
	case ProductListFail:
		msg, _ := action.Payload.(string)
		return ProductListState{Error: msg}
	default:
		return st
	}
}

type ProductDetailsState struct {
	Loading bool
	Product *domain.Product
	Error   string
}

func ProductDetailsReducer(slice any, action Action) any {
	st, _ := slice.(ProductDetailsState)
	switch action.Type {
	case ProductDetailsRequest:
		return ProductDetailsState{Loading: true}
	case ProductDetailsSuccess:
		product, _ := action.Payload.(*domain.Product)
		return ProductDetailsState{Product: product}
	case ProductDetailsFail:
		msg, _ := action.Payload.(string)
		return ProductDetailsState{Error: msg}
	default:
		return st
	}
}

func ProductListOf(s *Store) ProductListState {
	v, _ := s.Slice(SliceProductList).(ProductListState)
	return v
}

func ProductDetailsOf(s *Store) ProductDetailsState {
	v, _ := s.Slice(SliceProductDetails).(ProductDetailsState)
	return v
}
