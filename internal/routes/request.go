package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runRequestRouter(g *echo.Group, ctrl *controllers.RequestController) {
	g.GET("/requests", ctrl.GetRequests)
	g.GET("/requests/:id", ctrl.FindRequest)
	g.POST("/requests", ctrl.CreateRequest)
	g.PUT("/requests/:id", ctrl.UpdateRequest)
	g.PATCH("/requests/:id/status", ctrl.UpdateRequestStatus)
}
