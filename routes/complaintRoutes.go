package routes

import (
	"shakwa-be/controllers"
	"shakwa-be/middlewares"

	"github.com/gin-gonic/gin"
)

// ComplaintRoutes sets up the complaint routes
func ComplaintRoutes(r *gin.Engine, dailyLimit int) {
	complaint := r.Group("/api/complaint")
	complaint.Use(middlewares.AuthMiddleware())
	{
		complaint.POST("/create", middlewares.ComplaintRateLimiter(dailyLimit), controllers.CreateComplaint)
		complaint.GET("/mine", controllers.GetMyComplaints)
		complaint.GET("/:id", controllers.GetComplaint)
	}
}
