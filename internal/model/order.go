package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the way a customer settles an order on delivery.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Valid reports whether the payment method is one of the supported values.
func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentCard
}

// OrderStatus is the lifecycle state of a recorded order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// CustomerInfo holds the delivery details captured at checkout.
type CustomerInfo struct {
	Name                 string `json:"name"`
	Phone                string `json:"phone"`
	Address              string `json:"address"`
	City                 string `json:"city"`
	ZipCode              string `json:"zipCode"`
	DeliveryInstructions string `json:"deliveryInstructions,omitempty"`
}

// Order is an immutable record of a checkout. Only Status may change after creation.
type Order struct {
	ID            string          `json:"id"`
	Items         []CartLine      `json:"items"`
	CustomerInfo  CustomerInfo    `json:"customerInfo"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	OrderDate     time.Time       `json:"orderDate"`
	Status        OrderStatus     `json:"status"`
}

// OrderRequest represents the request payload for checking out the current cart.
type OrderRequest struct {
	CustomerInfo  CustomerInfo  `json:"customerInfo"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// OrderResponse is the checkout reply. Warning is set when the order was recorded
// but the cart could not be cleared afterwards.
type OrderResponse struct {
	*Order
	Warning string `json:"warning,omitempty"`
}

// StatusRequest represents the request payload for changing an order's status.
type StatusRequest struct {
	Status OrderStatus `json:"status"`
}
