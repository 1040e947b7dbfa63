package models

import "golang.org/x/crypto/bcrypt"

// AdminUser is a restaurant administrator. Every admin belongs to exactly
// one restaurant; superusers may act across all of them.
type AdminUser struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	Superuser    bool   `gorm:"default:false" json:"superuser"`
	RestaurantID uint   `gorm:"not null" json:"restaurant_id"`
}

// SetPassword hashes the plaintext password with bcrypt and stores the hash.
func (u *AdminUser) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *AdminUser) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// CanAccess reports whether the admin may mutate resources owned by the
// given restaurant.
func (u *AdminUser) CanAccess(restaurantID uint) bool {
	return u.Superuser || u.RestaurantID == restaurantID
}
