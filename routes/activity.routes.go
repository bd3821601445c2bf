package routes

import (
	"carbontrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterActivityRoutes(router *gin.Engine, activityController *controllers.ActivityController) {
	activityRoutes := router.Group("/activities")
	{
		activityRoutes.POST("", activityController.CreateActivity)
		activityRoutes.GET("", activityController.GetActivities)
		activityRoutes.GET("/:id", activityController.GetActivityByID)
		activityRoutes.PUT("/:id", activityController.UpdateActivity)
		activityRoutes.DELETE("/:id", activityController.DeleteActivity)
	}
}
