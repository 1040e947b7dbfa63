package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Team-AIEA/cafe-site-sna/internal/middleware"
	"github.com/Team-AIEA/cafe-site-sna/internal/models"
	"github.com/Team-AIEA/cafe-site-sna/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant by its ID
	GetRestaurantByID(c *gin.Context)
	// CreateRestaurant creates a new restaurant
	CreateRestaurant(c *gin.Context)
	// UpdateRestaurant updates an existing restaurant
	UpdateRestaurant(c *gin.Context)
	// TableQR renders a QR code for ordering from a table
	TableQR(c *gin.Context)
}

type restaurantController struct {
	service     services.RestaurantService
	frontendURL string
}

// NewRestaurantController creates a new instance of RestaurantController.
// frontendURL is the base URL encoded into table QR codes.
func NewRestaurantController(service services.RestaurantService, frontendURL string) *restaurantController {
	return &restaurantController{service: service, frontendURL: frontendURL}
}

// GetAllRestaurants godoc
// @Summary List restaurants
// @Description Get a list of all restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.Restaurant
// @Failure 500 {object} map[string]string
// @Router /restaurants [get]
func (rc *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := rc.service.GetAllRestaurants()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": models.MsgInternalError})
		return
	}
	ctx.JSON(http.StatusOK, restaurants)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Restaurant
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id} [get]
func (rc *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	restaurant, err := rc.service.GetRestaurantByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.MsgNotFound})
		return
	}
	ctx.JSON(http.StatusOK, restaurant)
}

// CreateRestaurant godoc
// @Summary Create a restaurant
// @Description Create a new restaurant. Superuser only.
// @Tags restaurants
// @Accept json
// @Produce json
// @Param restaurant body models.Restaurant true "Restaurant"
// @Success 201 {object} models.Restaurant
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /restaurants [post]
func (rc *restaurantController) CreateRestaurant(ctx *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		Address      string `json:"address" binding:"required"`
		WorkingHours string `json:"working_hours"`
		ContactInfo  string `json:"contact_info"`
		Description  string `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": models.MsgInvalidInput})
		return
	}

	restaurant, err := rc.service.CreateRestaurant(models.Restaurant{
		Name:         req.Name,
		Address:      req.Address,
		WorkingHours: req.WorkingHours,
		ContactInfo:  req.ContactInfo,
		Description:  req.Description,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": models.MsgInternalError})
		return
	}
	ctx.JSON(http.StatusCreated, restaurant)
}

// UpdateRestaurant godoc
// @Summary Update a restaurant
// @Description Update restaurant fields. Admins may only update their own restaurant.
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Restaurant
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /restaurants/{id} [put]
func (rc *restaurantController) UpdateRestaurant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	restaurant, err := rc.service.GetRestaurantByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.MsgNotFound})
		return
	}
	if !middleware.CheckScope(ctx, restaurant.ID) {
		return
	}

	var req struct {
		Name         *string `json:"name"`
		Address      *string `json:"address"`
		WorkingHours *string `json:"working_hours"`
		ContactInfo  *string `json:"contact_info"`
		Description  *string `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": models.MsgInvalidInput})
		return
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.WorkingHours != nil {
		restaurant.WorkingHours = *req.WorkingHours
	}
	if req.ContactInfo != nil {
		restaurant.ContactInfo = *req.ContactInfo
	}
	if req.Description != nil {
		restaurant.Description = *req.Description
	}

	updated, err := rc.service.UpdateRestaurant(restaurant)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": models.MsgInternalError})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// TableQR godoc
// @Summary Table QR code
// @Description PNG QR code pointing customers at the menu for a table
// @Tags restaurants
// @Produce png
// @Param id path int true "Restaurant ID"
// @Param table path int true "Table number"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id}/tables/{table}/qr [get]
func (rc *restaurantController) TableQR(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	table, err := strconv.Atoi(ctx.Param("table"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": models.MsgInvalidInput})
		return
	}
	if _, err := rc.service.GetRestaurantByID(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.MsgNotFound})
		return
	}

	target := fmt.Sprintf("%s/menu?restaurant_id=%d&table_id=%d", rc.frontendURL, id, table)
	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": models.MsgInternalError})
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}

// parseIDParam reads a numeric path parameter, responding with 400 on
// failure.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": models.MsgInvalidInput})
		return 0, false
	}
	return uint(id), true
}
