package routes

import (
	"github.com/Aayush-jas123/vcloak-platform/internal/controllers"
	"github.com/Aayush-jas123/vcloak-platform/internal/middleware"
	"github.com/Aayush-jas123/vcloak-platform/internal/models"

	"github.com/gin-gonic/gin"
)

func LocationRoutes(r *gin.Engine) {
	locations := r.Group("/locations")
	{
		locations.GET("", controllers.ListLocations)
		locations.GET("/nearby", controllers.GetNearbyLocations)
		locations.GET("/:id", controllers.GetLocation)

		locations.POST("", middleware.RequireRoles(models.RoleProvider), controllers.CreateLocation)
		locations.PUT("/:id", middleware.RequireRoles(models.RoleProvider), controllers.UpdateLocation)
		locations.DELETE("/:id", middleware.RequireRoles(models.RoleProvider), controllers.DeleteLocation)
	}
}
