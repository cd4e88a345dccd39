package routes

import (
	"github.com/Aayush-jas123/vcloak-platform/internal/controllers"
	"github.com/Aayush-jas123/vcloak-platform/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ReviewRoutes(r *gin.Engine) {
	reviews := r.Group("/reviews")
	{
		reviews.POST("", middleware.RequireAuth(), controllers.CreateReview)
		reviews.GET("/location/:id", controllers.ListLocationReviews)
	}
}
