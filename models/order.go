package models

import "time"

type Order struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderItem struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// OrderDetail is the single-order response shape of GET /orders?order_id=.
type OrderDetail struct {
	Order      Order       `json:"order"`
	OrderItems []OrderItem `json:"order_items"`
}

// CreateOrderRequest is the checkout payload posted to the marketplace API.
type CreateOrderRequest struct {
	UserID string      `json:"user_id"`
	Items  []OrderItem `json:"items"`
}

type CreateOrderResponse struct {
	OrderID int64 `json:"order_id"`
}
