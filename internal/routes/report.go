package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runReportRouter(g *echo.Group, ctrl *controllers.ReportController) {
	g.GET("/reports/requests", ctrl.GetRequestReport)
}
