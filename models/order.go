package models

import "time"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// PaymentMethod is how the customer chose to pay.
type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "COD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCard         PaymentMethod = "CARD"
)

// OrderItem is a denormalized snapshot of a product at checkout time.
// UnitPrice is the campaign-adjusted price charged, not a live reference;
// deleting the product later leaves the order unaffected.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Order is created exactly once at checkout. OrderStatus is the only field
// admins mutate afterwards, and only along legal transitions.
type Order struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id,omitempty"`
	Items         []OrderItem   `json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	CustomerName  string        `json:"customer_name"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email,omitempty"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	OrderStatus   OrderStatus   `json:"order_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// CheckoutItem is a single product + quantity in a checkout request.
type CheckoutItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest is the payload for placing an order.
type CheckoutRequest struct {
	Items         []CheckoutItem `json:"items" binding:"required,min=1,dive"`
	CustomerName  string         `json:"customer_name" binding:"required"`
	Phone         string         `json:"phone" binding:"required"`
	Email         string         `json:"email" binding:"omitempty,email"`
	Address       string         `json:"address" binding:"required"`
	PaymentMethod PaymentMethod  `json:"payment_method" binding:"required,oneof=COD BANK_TRANSFER CARD"`
}

// UpdateOrderStatusRequest is the payload for advancing an order's status.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required,oneof=PROCESSING SHIPPED DELIVERED CANCELLED"`
}

// CheckoutResponse is returned after a successful checkout, including any
// vouchers minted by gift campaigns targeting the purchased products.
type CheckoutResponse struct {
	Order    *Order    `json:"order"`
	Vouchers []Voucher `json:"vouchers,omitempty"`
}
