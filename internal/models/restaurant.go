package models

// Restaurant is the root aggregate: items, orders and admin users all
// reference it by id. There is no delete endpoint for restaurants, so the
// relations never cascade.
type Restaurant struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"uniqueIndex;not null" json:"name"`
	Address      string `gorm:"not null" json:"address"`
	WorkingHours string `json:"working_hours"`
	ContactInfo  string `json:"contact_info"`
	Description  string `json:"description"`

	Items  []Item      `gorm:"foreignKey:RestaurantID" json:"items,omitempty"`
	Orders []Order     `gorm:"foreignKey:RestaurantID" json:"-"`
	Admins []AdminUser `gorm:"foreignKey:RestaurantID" json:"-"`
}
