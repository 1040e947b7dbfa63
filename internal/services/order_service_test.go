package services

import (
	"strconv"
	"testing"

	"github.com/Team-AIEA/cafe-site-sna/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// itemKey formats an item id the way order payloads carry them.
func itemKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Restaurant{}, &models.AdminUser{}, &models.Item{}, &models.Order{})
	require.NoError(t, err)

	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) models.Restaurant {
	restaurant := models.Restaurant{Name: name, Address: "1 Test St"}
	require.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}

func seedItem(t *testing.T, db *gorm.DB, restaurantID uint, name string, price int) models.Item {
	item := models.Item{Name: name, Price: price, Available: true, RestaurantID: restaurantID}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestPlaceOrderComputesTotal(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)

	restaurant := seedRestaurant(t, db, "Testaurant")
	burger := seedItem(t, db, restaurant.ID, "Burger", 10)
	fries := seedItem(t, db, restaurant.ID, "Fries", 5)

	order, err := orders.PlaceOrder(PlaceOrderRequest{
		RestaurantID: restaurant.ID,
		TableID:      3,
		Items: map[string]int{
			itemKey(burger.ID): 2,
			itemKey(fries.ID):  3,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPlaced, order.Status)
	assert.Equal(t, 3, order.TableID)
	assert.Equal(t, 2*10+3*5, order.TotalCost)
	assert.NotZero(t, order.OrderNumber)
	assert.Len(t, order.Lines, 2)
}

func TestPlaceOrderSnapshotsItems(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)

	restaurant := seedRestaurant(t, db, "Testaurant")
	item := seedItem(t, db, restaurant.ID, "Soup", 7)

	order, err := orders.PlaceOrder(PlaceOrderRequest{
		RestaurantID: restaurant.ID,
		TableID:      1,
		Items:        map[string]int{itemKey(item.ID): 1},
	})
	require.NoError(t, err)

	// Edit the item after the order was placed; the snapshot must not move.
	item.Name = "Renamed Soup"
	item.Price = 99
	require.NoError(t, db.Save(&item).Error)

	stored, err := orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Lines, 1)
	assert.Equal(t, "Soup", stored.Lines[0].Name)
	assert.Equal(t, 7, stored.Lines[0].Price)
	assert.Equal(t, 7, stored.TotalCost)
}

func TestPlaceOrderUnknownItem(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)

	restaurant := seedRestaurant(t, db, "Testaurant")

	_, err := orders.PlaceOrder(PlaceOrderRequest{
		RestaurantID: restaurant.ID,
		TableID:      1,
		Items:        map[string]int{"999": 1},
	})
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestPlaceOrderInvalidPayloads(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)

	restaurant := seedRestaurant(t, db, "Testaurant")
	item := seedItem(t, db, restaurant.ID, "Tea", 2)

	_, err := orders.PlaceOrder(PlaceOrderRequest{
		RestaurantID: restaurant.ID + 100,
		TableID:      1,
		Items:        map[string]int{itemKey(item.ID): 1},
	})
	assert.ErrorIs(t, err, ErrNoRestaurant)

	_, err = orders.PlaceOrder(PlaceOrderRequest{
		RestaurantID: restaurant.ID,
		TableID:      1,
		Items:        map[string]int{itemKey(item.ID): 0},
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = orders.PlaceOrder(PlaceOrderRequest{
		RestaurantID: restaurant.ID,
		TableID:      1,
		Items:        map[string]int{"abc": 1},
	})
	assert.ErrorIs(t, err, ErrInvalidItemID)
}

func TestTransitionStatus(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)

	restaurant := seedRestaurant(t, db, "Testaurant")
	item := seedItem(t, db, restaurant.ID, "Cake", 4)

	place := func() models.Order {
		order, err := orders.PlaceOrder(PlaceOrderRequest{
			RestaurantID: restaurant.ID,
			TableID:      1,
			Items:        map[string]int{itemKey(item.ID): 1},
		})
		require.NoError(t, err)
		return order
	}

	t.Run("placed to in progress to completed", func(t *testing.T) {
		order := place()
		order, err := orders.TransitionStatus(order, models.StatusInProgress)
		require.NoError(t, err)
		order, err = orders.TransitionStatus(order, models.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, order.Status)
	})

	t.Run("self transition rejected", func(t *testing.T) {
		order := place()
		_, err := orders.TransitionStatus(order, models.StatusPlaced)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("terminal statuses reject exits", func(t *testing.T) {
		order := place()
		order, err := orders.TransitionStatus(order, models.StatusCanceled)
		require.NoError(t, err)
		_, err = orders.TransitionStatus(order, models.StatusInProgress)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("status out of range rejected", func(t *testing.T) {
		order := place()
		_, err := orders.TransitionStatus(order, 7)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("stale status detected", func(t *testing.T) {
		order := place()
		// Another admin moves the order before we do.
		_, err := orders.TransitionStatus(order, models.StatusInProgress)
		require.NoError(t, err)

		// Our copy still says placed; the conditional update must not win.
		_, err = orders.TransitionStatus(order, models.StatusCanceled)
		assert.ErrorIs(t, err, ErrStatusConflict)
	})
}

func TestListOrdersScoping(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)

	first := seedRestaurant(t, db, "First")
	second := seedRestaurant(t, db, "Second")
	firstItem := seedItem(t, db, first.ID, "A", 1)
	secondItem := seedItem(t, db, second.ID, "B", 2)

	_, err := orders.PlaceOrder(PlaceOrderRequest{
		RestaurantID: first.ID, TableID: 1,
		Items: map[string]int{itemKey(firstItem.ID): 1},
	})
	require.NoError(t, err)
	_, err = orders.PlaceOrder(PlaceOrderRequest{
		RestaurantID: second.ID, TableID: 1,
		Items: map[string]int{itemKey(secondItem.ID): 1},
	})
	require.NoError(t, err)

	scoped := &models.AdminUser{RestaurantID: first.ID}
	visible, err := orders.ListOrders(scoped)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, first.ID, visible[0].RestaurantID)

	super := &models.AdminUser{RestaurantID: first.ID, Superuser: true}
	visible, err = orders.ListOrders(super)
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}
