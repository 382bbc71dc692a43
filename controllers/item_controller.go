package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nexus-storefront/models"
	"nexus-storefront/repositories"
	"nexus-storefront/services"
)

type ItemController struct {
	Catalog *services.CatalogService
}

// respondUpstreamError maps a marketplace API failure to the client: the
// upstream status is relayed when known, anything else is a bad gateway.
func respondUpstreamError(c *gin.Context, message string, err error) {
	status := http.StatusBadGateway

	var upstream *repositories.UpstreamError
	if errors.As(err, &upstream) {
		status = upstream.StatusCode
	}

	c.JSON(status, models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

// @Summary List items
// @Description Get the marketplace catalog
// @Tags Items
// @Produce json
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /items [get]
func (ctrl *ItemController) GetItems(c *gin.Context) {
	items, err := ctrl.Catalog.GetItems(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, "Failed to fetch items", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Items retrieved",
		Data:    items,
	})
}
