package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runDashboardRouter(g *echo.Group, ctrl *controllers.DashboardController) {
	g.GET("/dashboard", ctrl.GetSummary)
}
