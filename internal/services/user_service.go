package services

import (
	"github.com/Team-AIEA/cafe-site-sna/internal/models"
	"gorm.io/gorm"
)

// UserService provides access to admin user accounts.
type UserService interface {
	// CreateUser stores a new admin; fails with ErrUsernameTaken on duplicates.
	CreateUser(user *models.AdminUser) error
	// GetUserByUsername retrieves an admin by unique username.
	GetUserByUsername(username string) (*models.AdminUser, error)
	// GetUserByID retrieves an admin by id.
	GetUserByID(id uint) (*models.AdminUser, error)
}

type userService struct {
	db *gorm.DB
}

// NewUserService creates a new instance of UserService.
func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(user *models.AdminUser) error {
	var existing models.AdminUser
	if err := s.db.Where("username = ?", user.Username).First(&existing).Error; err == nil {
		return ErrUsernameTaken
	}
	return s.db.Create(user).Error
}

func (s *userService) GetUserByUsername(username string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetUserByID(id uint) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
