package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nexus-storefront/middleware"
	"nexus-storefront/models"
	"nexus-storefront/repositories"
)

type OrderController struct {
	Orders *repositories.OrderRepository
}

// @Summary Order history
// @Description List the logged-in user's orders
// @Tags Orders
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	orders, err := ctrl.Orders.GetOrders(c.Request.Context(), middleware.IDToken(c))
	if err != nil {
		respondUpstreamError(c, "Failed to fetch orders", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Orders retrieved",
		Data:    orders,
	})
}

// @Summary Order detail
// @Description Get a single order with its line items
// @Tags Orders
// @Produce json
// @Param id path int true "Order id"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid order id",
		})
		return
	}

	detail, err := ctrl.Orders.GetOrder(c.Request.Context(), orderID, middleware.IDToken(c))
	if err != nil {
		respondUpstreamError(c, "Failed to fetch order", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order retrieved",
		Data:    detail,
	})
}

// @Summary Delete order
// @Tags Orders
// @Produce json
// @Param id path int true "Order id"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid order id",
		})
		return
	}

	if err := ctrl.Orders.DeleteOrder(c.Request.Context(), orderID, middleware.IDToken(c)); err != nil {
		respondUpstreamError(c, "Failed to delete order", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order deleted",
	})
}
