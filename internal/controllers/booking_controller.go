package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Aayush-jas123/vcloak-platform/internal/config"
	"github.com/Aayush-jas123/vcloak-platform/internal/middleware"
	"github.com/Aayush-jas123/vcloak-platform/internal/models"
	"github.com/Aayush-jas123/vcloak-platform/internal/utils"
)

// BookingResponse mirrors models.Booking for API output, optionally joined
// with its location and traveler.
type BookingResponse struct {
	ID                  uint              `json:"id"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
	TravelerID          uint              `json:"traveler_id"`
	LocationID          uint              `json:"location_id"`
	CheckIn             time.Time         `json:"check_in"`
	CheckOut            time.Time         `json:"check_out"`
	NumBags             int               `json:"num_bags"`
	TotalPrice          float64           `json:"total_price"`
	Status              string            `json:"status"`
	PaymentStatus       string            `json:"payment_status"`
	SpecialInstructions string            `json:"special_instructions"`
	Location            *LocationResponse `json:"location,omitempty"`
	Traveler            *models.User      `json:"traveler,omitempty"`
}

// toBookingResponse converts a models.Booking to a BookingResponse,
// embedding whichever associations were preloaded.
func toBookingResponse(booking models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                  booking.ID,
		CreatedAt:           booking.CreatedAt,
		UpdatedAt:           booking.UpdatedAt,
		TravelerID:          booking.TravelerID,
		LocationID:          booking.LocationID,
		CheckIn:             booking.CheckIn,
		CheckOut:            booking.CheckOut,
		NumBags:             booking.NumBags,
		TotalPrice:          booking.TotalPrice,
		Status:              booking.Status,
		PaymentStatus:       booking.PaymentStatus,
		SpecialInstructions: booking.SpecialInstructions,
	}
	if booking.Location.ID != 0 {
		loc := toLocationResponse(booking.Location)
		resp.Location = &loc
	}
	if booking.Traveler.ID != 0 {
		traveler := booking.Traveler
		resp.Traveler = &traveler
	}
	return resp
}

type createBookingInput struct {
	LocationID          uint   `json:"location_id" binding:"required"`
	CheckIn             string `json:"check_in" binding:"required"`
	CheckOut            string `json:"check_out" binding:"required"`
	NumBags             int    `json:"num_bags" binding:"required,min=1"`
	SpecialInstructions string `json:"special_instructions"`
}

// CreateBooking reserves a location for the authenticated traveler. The
// total price is snapshotted from the location's current hourly rate.
// Overlapping bookings on the same location are accepted; capacity is not
// checked against concurrent reservations.
func CreateBooking(c *gin.Context) {
	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	traveler, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	var location models.StorageLocation
	if err := config.DB.First(&location, input.LocationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	if !location.Active || !location.Verified {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location not available"})
		return
	}

	checkIn, err := parseBookingTime(input.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}
	checkOut, err := parseBookingTime(input.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}
	if !checkOut.After(checkIn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Check-out must be after check-in"})
		return
	}

	booking := models.Booking{
		TravelerID:          traveler.ID,
		LocationID:          location.ID,
		CheckIn:             checkIn,
		CheckOut:            checkOut,
		NumBags:             input.NumBags,
		TotalPrice:          utils.CalculatePrice(checkIn, checkOut, location.PricePerHour),
		Status:              models.BookingStatusConfirmed,
		PaymentStatus:       models.PaymentStatusPending,
		SpecialInstructions: input.SpecialInstructions,
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		logrus.WithError(err).Error("CreateBooking: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create booking"})
		return
	}

	booking.Location = location
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": toBookingResponse(booking),
	})
}

// ListMyBookings returns the traveler's bookings newest first, optionally
// filtered by status, each joined with its location.
func ListMyBookings(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	query := config.DB.Preload("Location").
		Where("traveler_id = ?", user.ID).
		Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		logrus.WithError(err).Error("ListMyBookings: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch bookings"})
		return
	}

	results := []BookingResponse{}
	for _, b := range bookings {
		results = append(results, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, gin.H{"bookings": results})
}

// GetBooking returns a single booking with its location and traveler.
// Only the booking's traveler or the owning provider may read it.
func GetBooking(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.Preload("Location").Preload("Traveler").
		First(&booking, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}
	if booking.TravelerID != user.ID && booking.Location.ProviderID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": toBookingResponse(booking)})
}

// UpdateBooking changes a booking's status. Travelers may only cancel;
// the owning provider may set any known status value.
func UpdateBooking(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.Preload("Location").
		First(&booking, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	var input struct {
		Status *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	switch {
	case booking.TravelerID == user.ID:
		// Cancellation is the only traveler-initiated transition; any other
		// requested status is ignored.
		if input.Status != nil && *input.Status == models.BookingStatusCancelled {
			booking.Status = models.BookingStatusCancelled
		}
	case booking.Location.ProviderID == user.ID:
		if input.Status != nil {
			if !models.ValidBookingStatus(*input.Status) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking status"})
				return
			}
			booking.Status = *input.Status
		}
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		logrus.WithError(err).Error("UpdateBooking: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking updated successfully",
		"booking": toBookingResponse(booking),
	})
}

// ListProviderBookings returns all bookings on the provider's locations,
// most recent check-in first, joined with location and traveler.
func ListProviderBookings(c *gin.Context) {
	provider, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	var locationIDs []uint
	if err := config.DB.Model(&models.StorageLocation{}).
		Where("provider_id = ?", provider.ID).
		Pluck("id", &locationIDs).Error; err != nil {
		logrus.WithError(err).Error("ListProviderBookings: location query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch bookings"})
		return
	}

	results := []BookingResponse{}
	if len(locationIDs) == 0 {
		c.JSON(http.StatusOK, gin.H{"bookings": results})
		return
	}

	var bookings []models.Booking
	if err := config.DB.Preload("Location").Preload("Traveler").
		Where("location_id IN ?", locationIDs).
		Order("check_in DESC").
		Find(&bookings).Error; err != nil {
		logrus.WithError(err).Error("ListProviderBookings: booking query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch bookings"})
		return
	}

	for _, b := range bookings {
		results = append(results, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, gin.H{"bookings": results})
}

// parseBookingTime accepts RFC 3339 timestamps, with or without an explicit
// zone offset.
func parseBookingTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
