package controllers

import (
	"errors"
	"net/http"

	"github.com/Team-AIEA/cafe-site-sna/internal/auth"
	"github.com/Team-AIEA/cafe-site-sna/internal/middleware"
	"github.com/Team-AIEA/cafe-site-sna/internal/models"
	"github.com/Team-AIEA/cafe-site-sna/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthController handles login, admin signup and profile requests.
type AuthController struct {
	users       services.UserService
	restaurants services.RestaurantService
	tokens      *auth.TokenService
}

// NewAuthController creates a new instance of AuthController.
func NewAuthController(users services.UserService, restaurants services.RestaurantService, tokens *auth.TokenService) *AuthController {
	return &AuthController{
		users:       users,
		restaurants: restaurants,
		tokens:      tokens,
	}
}

// Login verifies admin credentials and returns a signed bearer token.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.MsgInvalidInput})
		return
	}

	user, err := ac.users.GetUserByUsername(req.Username)
	if err != nil || !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": models.MsgInvalidCredentials})
		return
	}

	token, err := ac.tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": models.MsgInternalError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Signup creates a new admin account. The route is superuser-only.
func (ac *AuthController) Signup(c *gin.Context) {
	var req struct {
		Username     string `json:"username" binding:"required"`
		Password     string `json:"password" binding:"required"`
		RestaurantID uint   `json:"restaurant_id" binding:"required"`
		Superuser    bool   `json:"superuser"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.MsgInvalidInput})
		return
	}

	if _, err := ac.restaurants.GetRestaurantByID(req.RestaurantID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant does not exist"})
		return
	}

	user := models.AdminUser{
		Username:     req.Username,
		Superuser:    req.Superuser,
		RestaurantID: req.RestaurantID,
	}
	if err := user.SetPassword(req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": models.MsgInternalError})
		return
	}

	if err := ac.users.CreateUser(&user); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrUsernameTaken.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": models.MsgInternalError})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Profile returns the authenticated admin's own account.
func (ac *AuthController) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": models.MsgAdminRequired})
		return
	}
	c.JSON(http.StatusOK, user)
}
