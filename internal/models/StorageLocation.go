package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StorageLocation is a provider's listing. A location is bookable only
// while both Active and Verified hold; "deleting" a location flips Active
// to false and keeps the record.
type StorageLocation struct {
	gorm.Model
	ProviderID   uint    `json:"provider_id" gorm:"index;not null"`
	BusinessName string  `json:"business_name"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Capacity     int     `json:"capacity" gorm:"default:10"`
	PricePerHour float64 `json:"price_per_hour"`

	// Ordered string lists stored as JSON columns
	Amenities datatypes.JSONSlice[string] `json:"amenities"`
	Photos    datatypes.JSONSlice[string] `json:"photos"`

	Description  string  `json:"description"`
	Rating       float64 `json:"rating" gorm:"default:0"` // running average, recomputed per review
	TotalReviews int     `json:"total_reviews" gorm:"default:0"`
	Verified     bool    `json:"verified" gorm:"default:false"`
	Active       bool    `json:"active" gorm:"default:true"`

	Bookings []Booking `gorm:"foreignKey:LocationID" json:"bookings,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:LocationID" json:"reviews,omitempty"`
}
