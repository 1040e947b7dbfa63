package services

import (
	"github.com/Team-AIEA/cafe-site-sna/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant catalog.
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants.
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant by its ID.
	GetRestaurantByID(id uint) (models.Restaurant, error)
	// CreateRestaurant creates a new restaurant.
	CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error)
	// UpdateRestaurant updates an existing restaurant.
	UpdateRestaurant(restaurant models.Restaurant) (models.Restaurant, error)
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService.
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, id).Error; err != nil {
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (s *restaurantService) CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error) {
	if err := s.db.Create(&restaurant).Error; err != nil {
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (s *restaurantService) UpdateRestaurant(restaurant models.Restaurant) (models.Restaurant, error) {
	if err := s.db.Save(&restaurant).Error; err != nil {
		return models.Restaurant{}, err
	}
	return restaurant, nil
}
