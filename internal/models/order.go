package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Order statuses. Completed and canceled are terminal.
const (
	StatusPlaced     = 0
	StatusInProgress = 1
	StatusCompleted  = 2
	StatusCanceled   = 3
)

// transitions is the single source of truth for legal status changes.
var transitions = map[int][]int{
	StatusPlaced:     {StatusInProgress, StatusCompleted, StatusCanceled},
	StatusInProgress: {StatusCompleted, StatusCanceled},
	StatusCompleted:  {},
	StatusCanceled:   {},
}

// ValidStatus reports whether s is one of the four order statuses.
func ValidStatus(s int) bool {
	return s >= StatusPlaced && s <= StatusCanceled
}

// CanTransition reports whether an order may move between the two statuses.
// Self-transitions are illegal.
func CanTransition(from, to int) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderLine is a snapshot of an item at order time. Menu edits after the
// order is placed never change it.
type OrderLine struct {
	ItemID      uint   `json:"item_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
	Available   bool   `json:"available"`
}

// OrderLines is persisted as a single JSON column.
type OrderLines []OrderLine

func (l OrderLines) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *OrderLines) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported column type for order lines: %T", value)
	}
}

// Order is a customer order placed from a table. Lines and TotalCost are
// immutable after creation; only Status may change.
type Order struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Status       int        `gorm:"not null" json:"status"`
	TableID      int        `gorm:"not null" json:"table_id"`
	OrderNumber  int64      `gorm:"not null" json:"order_number"`
	Lines        OrderLines `gorm:"type:json" json:"items"`
	TotalCost    int        `gorm:"not null" json:"total_cost"`
	RestaurantID uint       `gorm:"not null" json:"restaurant_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
