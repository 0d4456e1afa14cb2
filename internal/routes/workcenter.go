package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runWorkCenterRouter(g *echo.Group, ctrl *controllers.WorkCenterController) {
	g.GET("/workcenters", ctrl.GetWorkCenters)
	g.POST("/workcenters", ctrl.CreateWorkCenter)
	g.PUT("/workcenters/:id", ctrl.UpdateWorkCenter)
	g.DELETE("/workcenters/:id", ctrl.DeleteWorkCenter)
}
