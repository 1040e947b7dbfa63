package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/Team-AIEA/cafe-site-sna/docs" // Import generated docs
	"github.com/Team-AIEA/cafe-site-sna/internal/auth"
	"github.com/Team-AIEA/cafe-site-sna/internal/config"
	"github.com/Team-AIEA/cafe-site-sna/internal/controllers"
	"github.com/Team-AIEA/cafe-site-sna/internal/database"
	"github.com/Team-AIEA/cafe-site-sna/internal/middleware"
	"github.com/Team-AIEA/cafe-site-sna/internal/models"
	"github.com/Team-AIEA/cafe-site-sna/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db            *gorm.DB
	configuration *config.Config
	tokens        *auth.TokenService

	userService       services.UserService
	restaurantService services.RestaurantService
	itemService       services.ItemService
	orderService      services.OrderService

	authController       *controllers.AuthController
	restaurantController controllers.RestaurantController
	itemController       controllers.ItemController
	orderController      controllers.OrderController
)

// @title Cafe Site API
// @version 1.0
// @description Restaurant order-management backend
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize token service, services and controllers
	tokens = auth.NewTokenService(configuration.JWTSecret)

	userService = services.NewUserService(db)
	restaurantService = services.NewRestaurantService(db)
	itemService = services.NewItemService(db)
	orderService = services.NewOrderService(db)

	authController = controllers.NewAuthController(userService, restaurantService, tokens)
	restaurantController = controllers.NewRestaurantController(restaurantService, configuration.FrontendOrigin)
	itemController = controllers.NewItemController(itemService)
	orderController = controllers.NewOrderController(orderService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema and
// seeds fixture data on an empty database
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	// Migrate the schema
	err = db.AutoMigrate(&models.Restaurant{}, &models.AdminUser{}, &models.Item{}, &models.Order{})
	checkPanicErr(err)

	// Seed only if empty
	var count int64
	db.Model(&models.AdminUser{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase creates the default fixture: one restaurant, one superuser
// (admin/admin) and one sample item. This replaces any reliance on
// hard-coded restaurant ids; the seeded rows use ordinary autoincrement ids.
func seedDatabase() {
	restaurant := models.Restaurant{
		Name:         "Sample Restaurant",
		Address:      "123 Sample St, Sample City",
		WorkingHours: "9:00 AM - 10:00 PM",
		ContactInfo:  "123-456-7890",
		Description:  "A sample restaurant for testing purposes.",
	}
	checkPanicErr(db.Create(&restaurant).Error)

	admin := models.AdminUser{
		Username:     "admin",
		Superuser:    true,
		RestaurantID: restaurant.ID,
	}
	checkPanicErr(admin.SetPassword("admin"))
	checkPanicErr(db.Create(&admin).Error)

	item := models.Item{
		Name:         "Sample Item",
		Description:  "A sample item for testing purposes.",
		Price:        10,
		Available:    true,
		RestaurantID: restaurant.ID,
	}
	checkPanicErr(db.Create(&item).Error)

	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router with middleware and routes
func setupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{configuration.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	requireAdmin := middleware.RequireAdmin(tokens, userService)

	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Authentication
	router.POST("/login", authController.Login)
	router.POST("/signup", requireAdmin, middleware.RequireSuperuser(), authController.Signup)
	router.GET("/user", requireAdmin, authController.Profile)

	// Restaurants: public reads, superuser create, scoped update
	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.GET("/restaurants/:id/tables/:table/qr", restaurantController.TableQR)
	router.POST("/restaurants", requireAdmin, middleware.RequireSuperuser(), restaurantController.CreateRestaurant)
	router.PUT("/restaurants/:id", requireAdmin, restaurantController.UpdateRestaurant)

	// Menu items: public reads, scoped writes
	router.GET("/items", itemController.GetAllItems)
	router.GET("/items/:id", itemController.GetItemByID)
	router.POST("/items", requireAdmin, itemController.CreateItem)
	router.PUT("/items/:id", requireAdmin, itemController.UpdateItem)
	router.DELETE("/items/:id", requireAdmin, itemController.DeleteItem)

	// Orders: public intake and reads, scoped status updates
	router.GET("/orders", requireAdmin, orderController.ListOrders)
	router.GET("/order/:id", orderController.GetOrderByID)
	router.POST("/order", orderController.PlaceOrder)
	router.PUT("/order/:id", requireAdmin, orderController.UpdateOrderStatus)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "cafe-site-sna",
	})
}
