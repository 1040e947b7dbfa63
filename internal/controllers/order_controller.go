package controllers

import (
	"errors"
	"net/http"

	"github.com/Team-AIEA/cafe-site-sna/internal/middleware"
	"github.com/Team-AIEA/cafe-site-sna/internal/models"
	"github.com/Team-AIEA/cafe-site-sna/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// ListOrders retrieves orders visible to the authenticated admin
	ListOrders(c *gin.Context)
	// GetOrderByID retrieves an order by its ID
	GetOrderByID(c *gin.Context)
	// PlaceOrder creates a new order from a customer payload
	PlaceOrder(c *gin.Context)
	// UpdateOrderStatus transitions an order's status
	UpdateOrderStatus(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) *orderController {
	return &orderController{service: service}
}

// ListOrders godoc
// @Summary List orders
// @Description Superusers see every order, scoped admins only their restaurant's
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /orders [get]
func (oc *orderController) ListOrders(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusForbidden, gin.H{"error": models.MsgAdminRequired})
		return
	}
	orders, err := oc.service.ListOrders(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": models.MsgInternalError})
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /order/{id} [get]
func (oc *orderController) GetOrderByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	order, err := oc.service.GetOrderByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.MsgNotFound})
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// PlaceOrder godoc
// @Summary Place an order
// @Description Public order intake: items maps item ids to quantities
// @Tags orders
// @Accept json
// @Produce json
// @Param order body services.PlaceOrderRequest true "Order payload"
// @Success 201 {object} models.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /order [post]
func (oc *orderController) PlaceOrder(ctx *gin.Context) {
	var req services.PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": models.MsgInvalidInput})
		return
	}

	order, err := oc.service.PlaceOrder(req)
	switch {
	case err == nil:
		ctx.JSON(http.StatusCreated, order)
	case errors.Is(err, services.ErrUnknownItem):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNoRestaurant),
		errors.Is(err, services.ErrInvalidItemID),
		errors.Is(err, services.ErrInvalidQuantity):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": models.MsgInternalError})
	}
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Transition an order between lifecycle statuses
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /order/{id} [put]
func (oc *orderController) UpdateOrderStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	order, err := oc.service.GetOrderByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.MsgNotFound})
		return
	}
	if !middleware.CheckScope(ctx, order.RestaurantID) {
		return
	}

	var req struct {
		Status *int `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": models.MsgInvalidInput})
		return
	}

	updated, err := oc.service.TransitionStatus(order, *req.Status)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, updated)
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrStatusConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": models.MsgInternalError})
	}
}
