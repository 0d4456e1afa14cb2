package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (c *DashboardController) GetSummary(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.dashboardService.GetSummary(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "dashboard summary fetched", http.StatusOK)
}
