package services

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/Team-AIEA/cafe-site-sna/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PlaceOrderRequest is the customer-facing order payload. Items maps item
// ids (decimal strings) to requested quantities.
type PlaceOrderRequest struct {
	RestaurantID uint           `json:"restaurant_id"`
	TableID      int            `json:"table_id"`
	Items        map[string]int `json:"items"`
}

// OrderService implements order intake and the status lifecycle.
type OrderService interface {
	// ListOrders returns orders visible to the admin: everything for a
	// superuser, only the admin's own restaurant otherwise.
	ListOrders(user *models.AdminUser) ([]models.Order, error)
	// GetOrderByID retrieves an order by its ID.
	GetOrderByID(id uint) (models.Order, error)
	// PlaceOrder validates the payload, snapshots the requested items and
	// persists a new order in the placed status.
	PlaceOrder(req PlaceOrderRequest) (models.Order, error)
	// TransitionStatus moves an order to a new status if the transition
	// table allows it. The order argument carries the status the caller
	// observed; a concurrent change fails with ErrStatusConflict.
	TransitionStatus(order models.Order, status int) (models.Order, error)
}

type orderService struct {
	db *gorm.DB
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

func (s *orderService) ListOrders(user *models.AdminUser) ([]models.Order, error) {
	query := s.db.Order("created_at DESC")
	if !user.Superuser {
		query = query.Where("restaurant_id = ?", user.RestaurantID)
	}
	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(id uint) (models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) PlaceOrder(req PlaceOrderRequest) (models.Order, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, req.RestaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrNoRestaurant
		}
		return models.Order{}, err
	}

	// Deterministic line order regardless of JSON key order.
	ids := make([]string, 0, len(req.Items))
	for id := range req.Items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := make(models.OrderLines, 0, len(ids))
	total := 0
	for _, raw := range ids {
		quantity := req.Items[raw]
		if quantity <= 0 {
			return models.Order{}, ErrInvalidQuantity
		}
		itemID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return models.Order{}, ErrInvalidItemID
		}
		var item models.Item
		if err := s.db.First(&item, uint(itemID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Order{}, ErrUnknownItem
			}
			return models.Order{}, err
		}
		lines = append(lines, models.OrderLine{
			ItemID:      item.ID,
			Name:        item.Name,
			Description: item.Description,
			Image:       item.Image,
			Price:       item.Price,
			Quantity:    quantity,
			Available:   item.Available,
		})
		total += item.Price * quantity
	}

	order := models.Order{
		Status:       models.StatusPlaced,
		TableID:      req.TableID,
		OrderNumber:  time.Now().Unix(),
		Lines:        lines,
		TotalCost:    total,
		RestaurantID: req.RestaurantID,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}

	log.WithFields(log.Fields{
		"order_id":      order.ID,
		"restaurant_id": order.RestaurantID,
		"table_id":      order.TableID,
		"total_cost":    order.TotalCost,
	}).Info("Order placed")
	return order, nil
}

func (s *orderService) TransitionStatus(order models.Order, status int) (models.Order, error) {
	if !models.ValidStatus(status) {
		return models.Order{}, ErrInvalidStatus
	}
	if !models.CanTransition(order.Status, status) {
		return models.Order{}, ErrInvalidTransition
	}

	// Conditional update pinned to the status we validated against, so two
	// admins racing on the same order cannot both win.
	result := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, order.Status).
		Update("status", status)
	if result.Error != nil {
		return models.Order{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Order{}, ErrStatusConflict
	}

	log.WithFields(log.Fields{
		"order_id": order.ID,
		"from":     order.Status,
		"to":       status,
	}).Info("Order status updated")
	order.Status = status
	return order, nil
}
