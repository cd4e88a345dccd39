package models

import "gorm.io/gorm"

// Review is feedback tied 1:1 to a completed booking. The unique index on
// BookingID enforces at most one review per booking at write time.
type Review struct {
	gorm.Model
	BookingID  uint   `json:"booking_id" gorm:"uniqueIndex;not null"`
	TravelerID uint   `json:"traveler_id" gorm:"index;not null"`
	LocationID uint   `json:"location_id" gorm:"index;not null"`
	Rating     int    `json:"rating"` // 1-5
	Comment    string `json:"comment"`

	Reviewer User `gorm:"foreignKey:TravelerID" json:"-"`
}
