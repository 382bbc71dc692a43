package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nexus-storefront/cart"
	"nexus-storefront/middleware"
	"nexus-storefront/models"
	"nexus-storefront/services"
	"nexus-storefront/utils"
)

type CartController struct {
	Carts    *cart.Manager
	Checkout *services.CheckoutService
}

func toCartView(snap cart.Snapshot) models.CartView {
	lines := make([]models.CartLineView, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		lines = append(lines, models.CartLineView{
			ID:       l.ProductID,
			Name:     l.Name,
			Price:    l.Price.Float(),
			ImageRef: l.ImageRef,
			Quantity: l.Quantity,
			Subtotal: (l.Price * models.Cents(l.Quantity)).Float(),
		})
	}
	return models.CartView{
		Lines:      lines,
		TotalItems: snap.TotalItems,
		TotalPrice: snap.TotalPrice.Float(),
		Version:    snap.Version,
	}
}

func (ctrl *CartController) store(c *gin.Context) (*cart.Store, string) {
	sessionID := middleware.SessionID(c)
	return ctrl.Carts.Get(c.Request.Context(), sessionID), sessionID
}

// @Summary Get cart
// @Description Get the current session's cart lines and totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	store, _ := ctrl.store(c)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    toCartView(store.Snapshot()),
	})
}

// @Summary Add to cart
// @Description Add a product to the cart, merging with an existing line for the same id
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Product to add"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	store, sessionID := ctrl.store(c)
	store.AddItem(cart.Product{
		ID:       req.ID,
		Name:     req.Name,
		Price:    models.CentsFromFloat(req.Price),
		ImageRef: req.ImageRef,
	}, req.Quantity)
	ctrl.Carts.Flush(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    toCartView(store.Snapshot()),
	})
}

// @Summary Increase quantity
// @Tags Cart
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} models.Response
// @Router /cart/items/{id}/increase [post]
func (ctrl *CartController) IncreaseQuantity(c *gin.Context) {
	store, sessionID := ctrl.store(c)
	store.IncreaseQuantity(c.Param("id"))
	ctrl.Carts.Flush(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Quantity increased",
		Data:    toCartView(store.Snapshot()),
	})
}

// @Summary Decrease quantity
// @Description Decrease a line's quantity, removing the line when it reaches zero
// @Tags Cart
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} models.Response
// @Router /cart/items/{id}/decrease [post]
func (ctrl *CartController) DecreaseQuantity(c *gin.Context) {
	store, sessionID := ctrl.store(c)
	store.DecreaseQuantity(c.Param("id"))
	ctrl.Carts.Flush(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Quantity decreased",
		Data:    toCartView(store.Snapshot()),
	})
}

// @Summary Remove item
// @Tags Cart
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	store, sessionID := ctrl.store(c)
	store.RemoveItem(c.Param("id"))
	ctrl.Carts.Flush(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed",
		Data:    toCartView(store.Snapshot()),
	})
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	store, sessionID := ctrl.store(c)
	store.Clear()
	ctrl.Carts.Flush(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared",
		Data:    toCartView(store.Snapshot()),
	})
}

// @Summary Checkout
// @Description Submit the cart as an order. The cart is cleared only after the marketplace API confirms the order.
// @Tags Cart
// @Produce json
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /cart/checkout [post]
func (ctrl *CartController) CheckoutCart(c *gin.Context) {
	store, sessionID := ctrl.store(c)
	idToken := middleware.IDToken(c)

	userID := ""
	if idToken != "" {
		if claims, err := utils.ParseSessionClaims(idToken); err == nil {
			userID = claims.Subject
		}
	}

	orderID, err := ctrl.Checkout.Checkout(c.Request.Context(), store, userID, idToken)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) || errors.Is(err, services.ErrBadProductID) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Checkout rejected",
				Error:   err.Error(),
			})
			return
		}
		respondUpstreamError(c, "Checkout failed", err)
		return
	}

	ctrl.Carts.Flush(c.Request.Context(), sessionID)

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order placed",
		Data:    gin.H{"order_id": orderID},
	})
}
