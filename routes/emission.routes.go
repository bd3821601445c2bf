package routes

import (
	"carbontrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterEmissionRoutes(router *gin.Engine, emissionController *controllers.EmissionController) {
	emissionRoutes := router.Group("/emissions")
	{
		emissionRoutes.POST("/calculate", emissionController.CalculateEmissions)
		emissionRoutes.GET("/total", emissionController.GetTotalEmissions)
		emissionRoutes.GET("/period", emissionController.GetEmissionsByPeriod)
	}
}
