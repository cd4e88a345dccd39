package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusActive    = "active"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Booking reserves a location for a traveler over [CheckIn, CheckOut).
// TotalPrice is snapshotted at creation time; later price changes on the
// location do not touch existing bookings.
type Booking struct {
	gorm.Model
	TravelerID          uint      `json:"traveler_id" gorm:"index;not null"`
	LocationID          uint      `json:"location_id" gorm:"index;not null"`
	CheckIn             time.Time `json:"check_in"`
	CheckOut            time.Time `json:"check_out"`
	NumBags             int       `json:"num_bags" gorm:"default:1"`
	TotalPrice          float64   `json:"total_price"`
	Status              string    `json:"status" gorm:"default:pending"`
	PaymentStatus       string    `json:"payment_status" gorm:"default:pending"`
	SpecialInstructions string    `json:"special_instructions"`

	Traveler User            `gorm:"foreignKey:TravelerID" json:"-"`
	Location StorageLocation `gorm:"foreignKey:LocationID" json:"-"`
	Review   *Review         `gorm:"foreignKey:BookingID" json:"review,omitempty"`
}

// ValidBookingStatus reports whether s is one of the known booking states.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusActive,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}
