package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"github.com/Aayush-jas123/vcloak-platform/internal/middleware"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to vcloak API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"auth":      "/auth",
				"locations": "/locations",
				"bookings":  "/bookings",
				"reviews":   "/reviews",
				"admin":     "/admin",
			},
		})
	})

	AuthRoutes(r)
	LocationRoutes(r)
	BookingRoutes(r)
	ReviewRoutes(r)
	AdminRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}
