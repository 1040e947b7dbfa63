package controllers

import (
	"net/http"
	"strconv"

	"github.com/Team-AIEA/cafe-site-sna/internal/middleware"
	"github.com/Team-AIEA/cafe-site-sna/internal/models"
	"github.com/Team-AIEA/cafe-site-sna/internal/services"
	"github.com/gin-gonic/gin"
)

// ItemController handles HTTP requests related to menu items
type ItemController interface {
	// GetAllItems retrieves all menu items
	GetAllItems(c *gin.Context)
	// GetItemByID retrieves a menu item by its ID
	GetItemByID(c *gin.Context)
	// CreateItem creates a new menu item
	CreateItem(c *gin.Context)
	// UpdateItem updates an existing menu item
	UpdateItem(c *gin.Context)
	// DeleteItem deletes a menu item by its ID
	DeleteItem(c *gin.Context)
}

type itemController struct {
	service services.ItemService
}

// NewItemController creates a new instance of ItemController
func NewItemController(service services.ItemService) *itemController {
	return &itemController{service: service}
}

// GetAllItems godoc
// @Summary List menu items
// @Description Get all menu items, optionally filtered by restaurant
// @Tags items
// @Produce json
// @Param restaurant_id query int false "Filter by restaurant"
// @Success 200 {array} models.Item
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /items [get]
func (ic *itemController) GetAllItems(ctx *gin.Context) {
	var restaurantID uint
	if raw := ctx.Query("restaurant_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": models.MsgInvalidInput})
			return
		}
		restaurantID = uint(parsed)
	}

	items, err := ic.service.GetAllItems(restaurantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": models.MsgInternalError})
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetItemByID godoc
// @Summary Get menu item by ID
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Item
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (ic *itemController) GetItemByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	item, err := ic.service.GetItemByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.MsgNotFound})
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// CreateItem godoc
// @Summary Create a menu item
// @Description Create a new menu item for a restaurant the admin is scoped to
// @Tags items
// @Accept json
// @Produce json
// @Param item body models.Item true "Item"
// @Success 201 {object} models.Item
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /items [post]
func (ic *itemController) CreateItem(ctx *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		Description  string `json:"description"`
		Image        string `json:"image"`
		Price        *int   `json:"price" binding:"required"`
		Available    *bool  `json:"available"`
		RestaurantID uint   `json:"restaurant_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": models.MsgInvalidInput})
		return
	}
	if !middleware.CheckScope(ctx, req.RestaurantID) {
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	item, err := ic.service.CreateItem(models.Item{
		Name:         req.Name,
		Description:  req.Description,
		Image:        req.Image,
		Price:        *req.Price,
		Available:    available,
		RestaurantID: req.RestaurantID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": models.MsgInternalError})
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// UpdateItem godoc
// @Summary Update a menu item
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Item
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /items/{id} [put]
func (ic *itemController) UpdateItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	item, err := ic.service.GetItemByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.MsgNotFound})
		return
	}
	if !middleware.CheckScope(ctx, item.RestaurantID) {
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Image       *string `json:"image"`
		Price       *int    `json:"price"`
		Available   *bool   `json:"available"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": models.MsgInvalidInput})
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	updated, err := ic.service.UpdateItem(item)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": models.MsgInternalError})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteItem godoc
// @Summary Delete a menu item
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /items/{id} [delete]
func (ic *itemController) DeleteItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	item, err := ic.service.GetItemByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.MsgNotFound})
		return
	}
	if !middleware.CheckScope(ctx, item.RestaurantID) {
		return
	}

	if err := ic.service.DeleteItem(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": models.MsgInternalError})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
