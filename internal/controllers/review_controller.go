package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Aayush-jas123/vcloak-platform/internal/config"
	"github.com/Aayush-jas123/vcloak-platform/internal/middleware"
	"github.com/Aayush-jas123/vcloak-platform/internal/models"
	"github.com/Aayush-jas123/vcloak-platform/internal/utils"
)

// ReviewResponse mirrors models.Review for API output with the reviewer's
// display name attached.
type ReviewResponse struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	BookingID    uint      `json:"booking_id"`
	TravelerID   uint      `json:"traveler_id"`
	LocationID   uint      `json:"location_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	TravelerName string    `json:"traveler_name,omitempty"`
}

func toReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID,
		CreatedAt:    review.CreatedAt,
		BookingID:    review.BookingID,
		TravelerID:   review.TravelerID,
		LocationID:   review.LocationID,
		Rating:       review.Rating,
		Comment:      review.Comment,
		TravelerName: review.Reviewer.Name,
	}
}

// averageRating is the arithmetic mean of all ratings for a location.
func averageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := 0
	for _, r := range ratings {
		total += r
	}
	return float64(total) / float64(len(ratings))
}

type createReviewInput struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Rating    *int   `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// CreateReview submits the single review allowed for a completed booking
// and folds its rating into the location's aggregate. The recompute locks
// the location row so concurrent submissions for the same location
// serialize instead of interleaving their read-then-average steps.
func CreateReview(c *gin.Context) {
	var input createReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateRating(*input.Rating); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, input.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	if booking.TravelerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the booking's traveler can review it"})
		return
	}
	if booking.Status != models.BookingStatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Can only review completed bookings"})
		return
	}

	var existing models.Review
	if err := config.DB.Where("booking_id = ?", booking.ID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Review already submitted for this booking"})
		return
	}

	review := models.Review{
		BookingID:  booking.ID,
		TravelerID: user.ID,
		LocationID: booking.LocationID,
		Rating:     *input.Rating,
		Comment:    input.Comment,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	// Lock the location row for the duration of the recompute.
	var location models.StorageLocation
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&location, booking.LocationID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load location"})
		return
	}

	if err := tx.Create(&review).Error; err != nil {
		tx.Rollback()
		// The unique index on booking_id catches a concurrent submission
		// that slipped past the existence check above.
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Review already submitted for this booking"})
			return
		}
		logrus.WithError(err).Error("CreateReview: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create review"})
		return
	}

	var ratings []int
	if err := tx.Model(&models.Review{}).
		Where("location_id = ?", location.ID).
		Pluck("rating", &ratings).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read reviews"})
		return
	}

	location.Rating = averageRating(ratings)
	location.TotalReviews = len(ratings)

	if err := tx.Save(&location).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update location rating"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction"})
		return
	}

	review.Reviewer = *user
	c.JSON(http.StatusCreated, gin.H{
		"message": "Review submitted successfully",
		"review":  toReviewResponse(review),
	})
}

// ListLocationReviews returns all reviews for a location newest first,
// along with its current aggregate rating.
func ListLocationReviews(c *gin.Context) {
	var location models.StorageLocation
	if err := config.DB.First(&location, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	var reviews []models.Review
	if err := config.DB.Preload("Reviewer").
		Where("location_id = ?", location.ID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		logrus.WithError(err).Error("ListLocationReviews: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch reviews"})
		return
	}

	results := []ReviewResponse{}
	for _, r := range reviews {
		results = append(results, toReviewResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{
		"reviews":        results,
		"average_rating": location.Rating,
		"total_reviews":  location.TotalReviews,
	})
}
