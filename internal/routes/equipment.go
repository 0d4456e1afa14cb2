package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runEquipmentRouter(g *echo.Group, ctrl *controllers.EquipmentController) {
	g.GET("/equipment", ctrl.GetEquipment)
	g.GET("/equipment/:id", ctrl.FindEquipment)
	g.POST("/equipment", ctrl.CreateEquipment)
	g.PUT("/equipment/:id", ctrl.UpdateEquipment)
	g.DELETE("/equipment/:id", ctrl.DeleteEquipment)
}
