package domain

import "fmt"

// OrderUser identifies the owner of an order as the server reports it.
type OrderUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type OrderItem struct {
	Product string  `json:"product"`
	Name    string  `json:"name"`
	Image   string  `json:"image"`
	Price   float64 `json:"price"`
	Qty     int     `json:"qty"`
}

// Order is the server-of-record order payload. All price fields are
// server-supplied; the client never writes a recomputed total back.
type Order struct {
	ID              string          `json:"_id"`
	User            OrderUser       `json:"user"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	OrderItems      []OrderItem     `json:"orderItems"`
	PaymentMethod   string          `json:"paymentMethod"`
	ItemsPrice      float64         `json:"itemsPrice"`
	ShippingPrice   float64         `json:"shippingPrice"`
	TaxPrice        float64         `json:"taxPrice"`
	TotalPrice      float64         `json:"totalPrice"`
	IsPaid          bool            `json:"isPaid"`
	PaidAt          string          `json:"paidAt,omitempty"`
	IsDelivered     bool            `json:"isDelivered"`
	DeliveredAt     string          `json:"deliveredAt,omitempty"`
}

// ItemsSubtotal sums price*qty over the order items. Display-only: the
// authoritative totals are the server-supplied price fields above.
func (o *Order) ItemsSubtotal() float64 {
	var sum float64
	for _, item := range o.OrderItems {
		sum += item.Price * float64(item.Qty)
	}
	return sum
}

// FormatAmount renders a money amount the way the storefront displays it.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// PaymentResult is the capture confirmation handed back by the payment
// capability. It is produced externally and forwarded to the pay dispatcher
// exactly once; nothing in the client retains it.
type PaymentResult struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}
