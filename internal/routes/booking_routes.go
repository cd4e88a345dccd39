package routes

import (
	"github.com/Aayush-jas123/vcloak-platform/internal/controllers"
	"github.com/Aayush-jas123/vcloak-platform/internal/middleware"
	"github.com/Aayush-jas123/vcloak-platform/internal/models"

	"github.com/gin-gonic/gin"
)

func BookingRoutes(r *gin.Engine) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.RequireAuth())
	{
		bookings.GET("", controllers.ListMyBookings)
		bookings.POST("", middleware.RequireRoles(models.RoleTraveler), controllers.CreateBooking)
		bookings.GET("/provider", middleware.RequireRoles(models.RoleProvider), controllers.ListProviderBookings)
		bookings.GET("/:id", controllers.GetBooking)
		bookings.PUT("/:id", controllers.UpdateBooking)
	}
}
