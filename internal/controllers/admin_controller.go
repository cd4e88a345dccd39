package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Aayush-jas123/vcloak-platform/internal/config"
	"github.com/Aayush-jas123/vcloak-platform/internal/models"
)

// GetStats returns platform-wide aggregate counts, computed fresh per call.
func GetStats(c *gin.Context) {
	var (
		totalUsers, totalTravelers, totalProviders       int64
		totalLocations, verifiedLocations                int64
		totalBookings, activeBookings, completedBookings int64
	)

	db := config.DB
	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{db.Model(&models.User{}), &totalUsers},
		{db.Model(&models.User{}).Where("role = ?", models.RoleTraveler), &totalTravelers},
		{db.Model(&models.User{}).Where("role = ?", models.RoleProvider), &totalProviders},
		{db.Model(&models.StorageLocation{}), &totalLocations},
		{db.Model(&models.StorageLocation{}).Where("verified = ?", true), &verifiedLocations},
		{db.Model(&models.Booking{}), &totalBookings},
		{db.Model(&models.Booking{}).Where("status = ?", models.BookingStatusActive), &activeBookings},
		{db.Model(&models.Booking{}).Where("status = ?", models.BookingStatusCompleted), &completedBookings},
	}
	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			logrus.WithError(err).Error("GetStats: count failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute stats"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"stats": gin.H{
		"total_users":          totalUsers,
		"total_travelers":      totalTravelers,
		"total_providers":      totalProviders,
		"total_locations":      totalLocations,
		"verified_locations":   verifiedLocations,
		"pending_verification": totalLocations - verifiedLocations,
		"total_bookings":       totalBookings,
		"active_bookings":      activeBookings,
		"completed_bookings":   completedBookings,
	}})
}

// ListProviders returns all providers annotated with their locations,
// optionally restricting the embedded locations by verification state.
func ListProviders(c *gin.Context) {
	verified := c.Query("verified")

	var providers []models.User
	if err := config.DB.Where("role = ?", models.RoleProvider).Find(&providers).Error; err != nil {
		logrus.WithError(err).Error("ListProviders: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch providers"})
		return
	}

	results := []gin.H{}
	for _, provider := range providers {
		query := config.DB.Where("provider_id = ?", provider.ID)
		switch verified {
		case "true":
			query = query.Where("verified = ?", true)
		case "false":
			query = query.Where("verified = ?", false)
		}

		var locations []models.StorageLocation
		if err := query.Find(&locations).Error; err != nil {
			logrus.WithError(err).Error("ListProviders: location query failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch locations"})
			return
		}

		locationResponses := []LocationResponse{}
		for _, loc := range locations {
			locationResponses = append(locationResponses, toLocationResponse(loc))
		}
		results = append(results, gin.H{
			"id":        provider.ID,
			"email":     provider.Email,
			"name":      provider.Name,
			"phone":     provider.Phone,
			"role":      provider.Role,
			"verified":  provider.Verified,
			"locations": locationResponses,
		})
	}

	c.JSON(http.StatusOK, gin.H{"providers": results})
}

// VerifyProvider grants the trust flag to a provider, optionally cascading
// to all of their locations.
func VerifyProvider(c *gin.Context) {
	var provider models.User
	if err := config.DB.First(&provider, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}
	if provider.Role != models.RoleProvider {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User is not a provider"})
		return
	}

	var input struct {
		VerifyLocations bool `json:"verify_locations"`
	}
	// Body is optional; an empty or absent body means no cascade.
	_ = c.ShouldBindJSON(&input)

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	provider.Verified = true
	if err := tx.Save(&provider).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not verify provider"})
		return
	}
	if input.VerifyLocations {
		if err := tx.Model(&models.StorageLocation{}).
			Where("provider_id = ?", provider.ID).
			Update("verified", true).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not verify locations"})
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Provider verified successfully"})
}

// VerifyLocation grants the trust flag to a single location.
func VerifyLocation(c *gin.Context) {
	var location models.StorageLocation
	if err := config.DB.First(&location, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	location.Verified = true
	if err := config.DB.Save(&location).Error; err != nil {
		logrus.WithError(err).Error("VerifyLocation: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not verify location"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location verified successfully"})
}

// ListUsers returns all users, optionally filtered by role.
func ListUsers(c *gin.Context) {
	query := config.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		logrus.WithError(err).Error("ListUsers: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// UpdateUser patches a user's verified flag.
func UpdateUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	var input struct {
		Verified *bool `json:"verified"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Verified != nil {
		user.Verified = *input.Verified
	}

	if err := config.DB.Save(&user).Error; err != nil {
		logrus.WithError(err).Error("UpdateUser: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

// ListAllBookings returns the most recent bookings for oversight, capped at
// 100, optionally filtered by status.
func ListAllBookings(c *gin.Context) {
	query := config.DB.Preload("Location").Preload("Traveler").
		Order("created_at DESC").
		Limit(100)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		logrus.WithError(err).Error("ListAllBookings: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch bookings"})
		return
	}

	results := []BookingResponse{}
	for _, b := range bookings {
		results = append(results, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, gin.H{"bookings": results})
}
