package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runTeamRouter(g *echo.Group, ctrl *controllers.TeamController) {
	g.GET("/teams", ctrl.GetTeams)
	g.GET("/teams/:id", ctrl.FindTeam)
	g.POST("/teams", ctrl.CreateTeam)
	g.PUT("/teams/:id", ctrl.UpdateTeam)
	g.DELETE("/teams/:id", ctrl.DeleteTeam)
}
