package controllers

import (
	"errors"
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"

	"github.com/Aayush-jas123/vcloak-platform/internal/config"
	"github.com/Aayush-jas123/vcloak-platform/internal/middleware"
	"github.com/Aayush-jas123/vcloak-platform/internal/models"
	"github.com/Aayush-jas123/vcloak-platform/internal/utils"
)

// LocationResponse mirrors models.StorageLocation for API output, with the
// list columns decoded, the aggregate rating rounded and an optional
// distance from the query point.
type LocationResponse struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ProviderID   uint      `json:"provider_id"`
	BusinessName string    `json:"business_name"`
	Address      string    `json:"address"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Capacity     int       `json:"capacity"`
	PricePerHour float64   `json:"price_per_hour"`
	Amenities    []string  `json:"amenities"`
	Photos       []string  `json:"photos"`
	Description  string    `json:"description"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"total_reviews"`
	Verified     bool      `json:"verified"`
	Active       bool      `json:"active"`
	Geometry     string    `json:"geometry,omitempty"`
	Distance     *float64  `json:"distance,omitempty"`
}

// toLocationResponse converts a models.StorageLocation to a LocationResponse
func toLocationResponse(loc models.StorageLocation) LocationResponse {
	geometry, _ := pointGeoJSON(loc.Latitude, loc.Longitude)
	return LocationResponse{
		ID:           loc.ID,
		CreatedAt:    loc.CreatedAt,
		UpdatedAt:    loc.UpdatedAt,
		ProviderID:   loc.ProviderID,
		BusinessName: loc.BusinessName,
		Address:      loc.Address,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		Capacity:     loc.Capacity,
		PricePerHour: loc.PricePerHour,
		Amenities:    emptyIfNil(loc.Amenities),
		Photos:       emptyIfNil(loc.Photos),
		Description:  loc.Description,
		Rating:       math.Round(loc.Rating*10) / 10,
		TotalReviews: loc.TotalReviews,
		Verified:     loc.Verified,
		Active:       loc.Active,
		Geometry:     geometry,
	}
}

// pointGeoJSON encodes a lat/lng pair as a GeoJSON Point string.
func pointGeoJSON(lat, lng float64) (string, error) {
	p := geom.NewPointFlat(geom.XY, []float64{lng, lat})
	b, err := gjson.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// withinRadius keeps locations no farther than radius km from the query
// point, attaches the computed distance and sorts ascending by it.
func withinRadius(locations []models.StorageLocation, lat, lng, radius float64) []LocationResponse {
	results := []LocationResponse{}
	for _, loc := range locations {
		distance := utils.CalculateDistance(lat, lng, loc.Latitude, loc.Longitude)
		if distance <= radius {
			resp := toLocationResponse(loc)
			d := distance
			resp.Distance = &d
			results = append(results, resp)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return *results[i].Distance < *results[j].Distance
	})
	return results
}

// ListLocations returns active locations with optional city, verified and
// proximity filters. A lat or lng of exactly 0 is treated as absent,
// matching the original listing behavior.
func ListLocations(c *gin.Context) {
	city := c.Query("city")
	lat, _ := strconv.ParseFloat(c.Query("lat"), 64)
	lng, _ := strconv.ParseFloat(c.Query("lng"), 64)
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", "10"), 64)
	if err != nil {
		radius = 10
	}
	verifiedOnly := c.DefaultQuery("verified", "false") == "true"

	query := config.DB.Where("active = ?", true)
	if verifiedOnly {
		query = query.Where("verified = ?", true)
	}
	if city != "" {
		query = query.Where("address ILIKE ?", "%"+city+"%")
	}

	var locations []models.StorageLocation
	if err := query.Find(&locations).Error; err != nil {
		logrus.WithError(err).Error("ListLocations: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch locations"})
		return
	}

	if lat != 0 && lng != 0 {
		c.JSON(http.StatusOK, gin.H{"locations": withinRadius(locations, lat, lng, radius)})
		return
	}

	results := []LocationResponse{}
	for _, loc := range locations {
		results = append(results, toLocationResponse(loc))
	}
	c.JSON(http.StatusOK, gin.H{"locations": results})
}

// GetNearbyLocations returns active, verified locations within radius km of
// the given point, sorted by distance.
func GetNearbyLocations(c *gin.Context) {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude and longitude required"})
		return
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinate values"})
		return
	}
	if err := utils.ValidateCoordinates(lat, lng); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", "5"), 64)
	if err != nil {
		radius = 5
	}

	var locations []models.StorageLocation
	if err := config.DB.Where("active = ? AND verified = ?", true, true).Find(&locations).Error; err != nil {
		logrus.WithError(err).Error("GetNearbyLocations: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch locations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": withinRadius(locations, lat, lng, radius)})
}

type createLocationInput struct {
	BusinessName string   `json:"business_name" binding:"required"`
	Address      string   `json:"address" binding:"required"`
	Latitude     *float64 `json:"latitude" binding:"required"`
	Longitude    *float64 `json:"longitude" binding:"required"`
	Capacity     *int     `json:"capacity" binding:"required"`
	PricePerHour *float64 `json:"price_per_hour" binding:"required"`
	Amenities    []string `json:"amenities"`
	Photos       []string `json:"photos"`
	Description  string   `json:"description"`
}

// CreateLocation registers a new listing for the authenticated provider.
// New listings start unverified and active.
func CreateLocation(c *gin.Context) {
	var input createLocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateCoordinates(*input.Latitude, *input.Longitude); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	provider, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	location := models.StorageLocation{
		ProviderID:   provider.ID,
		BusinessName: input.BusinessName,
		Address:      input.Address,
		Latitude:     *input.Latitude,
		Longitude:    *input.Longitude,
		Capacity:     *input.Capacity,
		PricePerHour: *input.PricePerHour,
		Amenities:    input.Amenities,
		Photos:       input.Photos,
		Description:  input.Description,
		Active:       true,
	}
	if err := config.DB.Create(&location).Error; err != nil {
		logrus.WithError(err).Error("CreateLocation: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create location"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Location created successfully",
		"location": toLocationResponse(location),
	})
}

// GetLocation returns a location by id regardless of its active or
// verified state.
func GetLocation(c *gin.Context) {
	id := c.Param("id")
	var location models.StorageLocation
	if err := config.DB.First(&location, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": toLocationResponse(location)})
}

type updateLocationInput struct {
	BusinessName *string   `json:"business_name"`
	Address      *string   `json:"address"`
	Capacity     *int      `json:"capacity"`
	PricePerHour *float64  `json:"price_per_hour"`
	Amenities    *[]string `json:"amenities"`
	Photos       *[]string `json:"photos"`
	Description  *string   `json:"description"`
	Active       *bool     `json:"active"`
}

// applyLocationUpdates patches only the fields present in the input.
// Coordinates are deliberately not updatable here.
func applyLocationUpdates(location *models.StorageLocation, input updateLocationInput) {
	if input.BusinessName != nil {
		location.BusinessName = *input.BusinessName
	}
	if input.Address != nil {
		location.Address = *input.Address
	}
	if input.Capacity != nil {
		location.Capacity = *input.Capacity
	}
	if input.PricePerHour != nil {
		location.PricePerHour = *input.PricePerHour
	}
	if input.Amenities != nil {
		location.Amenities = *input.Amenities
	}
	if input.Photos != nil {
		location.Photos = *input.Photos
	}
	if input.Description != nil {
		location.Description = *input.Description
	}
	if input.Active != nil {
		location.Active = *input.Active
	}
}

// UpdateLocation patches a listing owned by the authenticated provider.
func UpdateLocation(c *gin.Context) {
	location, ok := loadOwnedLocation(c)
	if !ok {
		return
	}

	var input updateLocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applyLocationUpdates(location, input)

	if err := config.DB.Save(location).Error; err != nil {
		logrus.WithError(err).Error("UpdateLocation: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update location"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Location updated successfully",
		"location": toLocationResponse(*location),
	})
}

// DeleteLocation soft-deletes a listing by marking it inactive. The record
// is never removed; repeating the call succeeds and leaves active=false.
func DeleteLocation(c *gin.Context) {
	location, ok := loadOwnedLocation(c)
	if !ok {
		return
	}

	location.Active = false
	if err := config.DB.Save(location).Error; err != nil {
		logrus.WithError(err).Error("DeleteLocation: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete location"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted successfully"})
}

// loadOwnedLocation fetches the location in the id parameter and verifies
// the caller owns it, writing the error response itself when not.
func loadOwnedLocation(c *gin.Context) (*models.StorageLocation, bool) {
	var location models.StorageLocation
	if err := config.DB.First(&location, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return nil, false
	}

	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return nil, false
	}
	if location.ProviderID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owning provider can modify this location"})
		return nil, false
	}
	return &location, true
}
