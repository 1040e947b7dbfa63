package services

import (
	"github.com/Team-AIEA/cafe-site-sna/internal/models"
	"gorm.io/gorm"
)

// ItemService provides methods to interact with the menu catalog.
type ItemService interface {
	// GetAllItems retrieves items, optionally filtered by restaurant.
	GetAllItems(restaurantID uint) ([]models.Item, error)
	// GetItemByID retrieves an item by its ID.
	GetItemByID(id uint) (models.Item, error)
	// CreateItem creates a new menu item.
	CreateItem(item models.Item) (models.Item, error)
	// UpdateItem updates an existing menu item.
	UpdateItem(item models.Item) (models.Item, error)
	// DeleteItem deletes a menu item by its ID.
	DeleteItem(id uint) error
}

type itemService struct {
	db *gorm.DB
}

// NewItemService creates a new instance of ItemService.
func NewItemService(db *gorm.DB) ItemService {
	return &itemService{db: db}
}

func (s *itemService) GetAllItems(restaurantID uint) ([]models.Item, error) {
	query := s.db
	if restaurantID != 0 {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	var items []models.Item
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *itemService) GetItemByID(id uint) (models.Item, error) {
	var item models.Item
	if err := s.db.First(&item, id).Error; err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (s *itemService) CreateItem(item models.Item) (models.Item, error) {
	if err := s.db.Create(&item).Error; err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (s *itemService) UpdateItem(item models.Item) (models.Item, error) {
	if err := s.db.Save(&item).Error; err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (s *itemService) DeleteItem(id uint) error {
	return s.db.Delete(&models.Item{}, id).Error
}
