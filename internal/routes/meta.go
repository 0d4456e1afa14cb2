package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runMetaRouter(g *echo.Group, ctrl *controllers.MetaController) {
	g.GET("/meta/create-request", ctrl.CreateRequestMeta)
	g.GET("/meta/create-equipment", ctrl.CreateEquipmentMeta)
}
