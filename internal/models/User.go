package models

import "gorm.io/gorm"

const (
	RoleTraveler = "traveler"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role" gorm:"default:traveler"` // "traveler", "provider", "admin"
	Verified bool   `json:"verified" gorm:"default:false"`

	// Actor-specific relations
	StorageLocations []StorageLocation `gorm:"foreignKey:ProviderID" json:"storage_locations,omitempty"`
	Bookings         []Booking         `gorm:"foreignKey:TravelerID" json:"bookings,omitempty"`
}
