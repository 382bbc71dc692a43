package repositories

import (
	"context"
	"fmt"
	"net/http"

	"nexus-storefront/models"
)

type OrderRepository struct {
	client *APIClient
}

func NewOrderRepository(client *APIClient) *OrderRepository {
	return &OrderRepository{client: client}
}

// GetOrders lists the logged-in user's orders.
func (r *OrderRepository) GetOrders(ctx context.Context, idToken string) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.client.getJSON(ctx, "/orders", idToken, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches a single order with its line items.
func (r *OrderRepository) GetOrder(ctx context.Context, orderID int64, idToken string) (*models.OrderDetail, error) {
	var detail models.OrderDetail
	path := fmt.Sprintf("/orders?order_id=%d", orderID)
	if err := r.client.getJSON(ctx, path, idToken, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreateOrder submits the checkout payload and returns the created order id.
func (r *OrderRepository) CreateOrder(ctx context.Context, req models.CreateOrderRequest, idToken string) (int64, error) {
	var created models.CreateOrderResponse
	if err := r.client.postJSON(ctx, "/orders", idToken, req, &created); err != nil {
		return 0, err
	}
	return created.OrderID, nil
}

// DeleteOrder removes an order. The upstream replies 204 with no body.
func (r *OrderRepository) DeleteOrder(ctx context.Context, orderID int64, idToken string) error {
	path := fmt.Sprintf("/orders?order_id=%d", orderID)
	req, err := r.client.newRequest(ctx, http.MethodDelete, path, nil, idToken)
	if err != nil {
		return err
	}
	return r.client.doJSON(req, nil)
}
