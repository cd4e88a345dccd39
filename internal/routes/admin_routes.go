package routes

import (
	"github.com/Aayush-jas123/vcloak-platform/internal/controllers"
	"github.com/Aayush-jas123/vcloak-platform/internal/middleware"
	"github.com/Aayush-jas123/vcloak-platform/internal/models"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/stats", controllers.GetStats)
		admin.GET("/providers", controllers.ListProviders)
		admin.PUT("/providers/:id/verify", controllers.VerifyProvider)
		admin.PUT("/locations/:id/verify", controllers.VerifyLocation)
		admin.GET("/users", controllers.ListUsers)
		admin.PUT("/users/:id", controllers.UpdateUser)
		admin.GET("/bookings", controllers.ListAllBookings)
	}
}
