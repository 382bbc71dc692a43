package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"nexus-storefront/config"
	"nexus-storefront/middleware"
	"nexus-storefront/models"
	"nexus-storefront/repositories"
	"nexus-storefront/services"
)

type AdminController struct {
	Items   *repositories.ItemRepository
	Catalog *services.CatalogService
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// @Summary Add item
// @Description Create a marketplace item with an optional image, proxied to the marketplace API
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Param name formData string true "Item name"
// @Param description formData string true "Item description"
// @Param price formData number true "Unit price"
// @Param stock formData int false "Initial stock"
// @Param image formData file false "Item image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/items [post]
func (ctrl *AdminController) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid item form",
			Error:   err.Error(),
		})
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}
	if image != nil {
		if image.Size > config.AppConfig.MaxUploadSize {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Image exceeds maximum allowed size",
			})
			return
		}
		ext := strings.ToLower(filepath.Ext(image.Filename))
		if !allowedImageExtensions[ext] {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Invalid file type. Only images are allowed",
			})
			return
		}
	}

	itemID, err := ctrl.Items.AddItem(c.Request.Context(), req, image, middleware.IDToken(c))
	if err != nil {
		respondUpstreamError(c, "Failed to add item", err)
		return
	}

	ctrl.Catalog.InvalidateCache(c.Request.Context())

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Item created",
		Data:    gin.H{"item_id": itemID},
	})
}

// @Summary Update item
// @Description Partially update an item's price and/or stock; omitted fields are left unchanged
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body models.UpdateItemRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/items [patch]
func (ctrl *AdminController) UpdateItem(c *gin.Context) {
	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid update body",
			Error:   err.Error(),
		})
		return
	}

	if req.Price == nil && req.Stock == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Nothing to update",
		})
		return
	}

	if err := ctrl.Items.UpdateItem(c.Request.Context(), req, middleware.IDToken(c)); err != nil {
		respondUpstreamError(c, "Failed to update item", err)
		return
	}

	ctrl.Catalog.InvalidateCache(c.Request.Context())

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item updated",
	})
}
