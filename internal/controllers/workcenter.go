package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type WorkCenterController struct {
	workCenterService services.WorkCenterServiceInterface
	logger            *zap.Logger
}

func NewWorkCenterController(workCenterService services.WorkCenterServiceInterface, logger *zap.Logger) *WorkCenterController {
	return &WorkCenterController{workCenterService: workCenterService, logger: logger}
}

func (c *WorkCenterController) GetWorkCenters(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.workCenterService.GetWorkCenters(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work centers fetched", http.StatusOK)
}

func (c *WorkCenterController) CreateWorkCenter(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateWorkCenterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.workCenterService.CreateWorkCenter(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work center created", http.StatusCreated)
}

func (c *WorkCenterController) UpdateWorkCenter(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateWorkCenterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.workCenterService.UpdateWorkCenter(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "work center updated", http.StatusOK)
}

func (c *WorkCenterController) DeleteWorkCenter(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.workCenterService.DeleteWorkCenter(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "work center deleted", http.StatusOK)
}
