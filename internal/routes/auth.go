package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runAuthRouter(g *echo.Group, ctrl *controllers.AuthController) {
	g.POST("/auth/signup", ctrl.Signup)
	g.POST("/auth/login", ctrl.Login)
}
