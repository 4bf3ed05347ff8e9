package state

// Slice names of the standard store composition.
const (
	SliceProductList    = "productList"
	SliceProductDetails = "productDetails"
	SliceCart           = "cart"
	SliceOrderDetails   = "orderDetails"
	SliceOrderPay       = "orderPay"
)

// Action types. Every async dispatcher emits its REQUEST followed by exactly
// one of SUCCESS or FAIL.
const (
	ProductListRequest = "PRODUCT_LIST_REQUEST"
	ProductListSuccess = "PRODUCT_LIST_SUCCESS"
	ProductListFail    = "PRODUCT_LIST_FAIL"

	ProductDetailsRequest = "PRODUCT_DETAILS_REQUEST"
	ProductDetailsSuccess = "PRODUCT_DETAILS_SUCCESS"
	ProductDetailsFail    = "PRODUCT_DETAILS_FAIL"

	CartAddItem    = "CART_ADD_ITEM"
	CartRemoveItem = "CART_REMOVE_ITEM"

	OrderDetailsRequest = "ORDER_DETAILS_REQUEST"
	OrderDetailsSuccess = "ORDER_DETAILS_SUCCESS"
	OrderDetailsFail    = "ORDER_DETAILS_FAIL"

	OrderPayRequest = "ORDER_PAY_REQUEST"
	OrderPaySuccess = "ORDER_PAY_SUCCESS"
	OrderPayFail    = "ORDER_PAY_FAIL"
	OrderPayReset   = "ORDER_PAY_RESET"
)

// Reducers returns the standard slice composition. Adding a slice is adding
// an entry here; existing reducers are untouched.
func Reducers() map[string]Reducer {
	return map[string]Reducer{
		SliceProductList:    ProductListReducer,
		SliceProductDetails: ProductDetailsReducer,
		SliceCart:           CartReducer,
		SliceOrderDetails:   OrderDetailsReducer,
		SliceOrderPay:       OrderPayReducer,
	}
}
