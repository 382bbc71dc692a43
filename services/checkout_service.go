package services

import (
	"context"
	"errors"
	"strconv"

	"nexus-storefront/cart"
	"nexus-storefront/models"
	"nexus-storefront/repositories"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrBadProductID = errors.New("cart contains a non-numeric product id")
)

// CheckoutService projects the session cart into an order submission. The
// cart is cleared only after the marketplace API confirms the order; any
// failure leaves the cart untouched so the user can retry.
type CheckoutService struct {
	orderRepo *repositories.OrderRepository
}

func NewCheckoutService(orderRepo *repositories.OrderRepository) *CheckoutService {
	return &CheckoutService{orderRepo: orderRepo}
}

func (s *CheckoutService) Checkout(ctx context.Context, store *cart.Store, userID, idToken string) (int64, error) {
	lines := store.Lines()
	if len(lines) == 0 {
		return 0, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		itemID, err := strconv.ParseInt(line.ProductID, 10, 64)
		if err != nil {
			return 0, ErrBadProductID
		}
		items = append(items, models.OrderItem{
			ItemID:   itemID,
			Quantity: line.Quantity,
		})
	}

	orderID, err := s.orderRepo.CreateOrder(ctx, models.CreateOrderRequest{
		UserID: userID,
		Items:  items,
	}, idToken)
	if err != nil {
		return 0, err
	}

	store.Clear()
	return orderID, nil
}
