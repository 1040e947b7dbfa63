package models

// Item is a menu entry. Price is in the smallest currency unit.
type Item struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Price        int    `gorm:"not null" json:"price"`
	Available    bool   `gorm:"default:true" json:"available"`
	RestaurantID uint   `gorm:"not null" json:"restaurant_id"`
}
