package routes

import (
	"github.com/Aayush-jas123/vcloak-platform/internal/controllers"
	"github.com/Aayush-jas123/vcloak-platform/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/refresh", middleware.RequireRefresh(), controllers.Refresh)
		auth.GET("/me", middleware.RequireAuth(), controllers.Me)
	}
}
