package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

// MetaController serves the aggregated reference lists the creation forms
// are populated from.
type MetaController struct {
	metaService services.MetaServiceInterface
	logger      *zap.Logger
}

func NewMetaController(metaService services.MetaServiceInterface, logger *zap.Logger) *MetaController {
	return &MetaController{metaService: metaService, logger: logger}
}

func (c *MetaController) CreateRequestMeta(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.metaService.CreateRequestMeta(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "create-request metadata fetched", http.StatusOK)
}

func (c *MetaController) CreateEquipmentMeta(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.metaService.CreateEquipmentMeta(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "create-equipment metadata fetched", http.StatusOK)
}
