package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(requestService services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{requestService: requestService, logger: logger}
}

func (c *RequestController) GetRequests(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter, err := parseRequestFilter(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.GetRequests(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "maintenance requests fetched", http.StatusOK)
}

func (c *RequestController) FindRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.FindRequest(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "maintenance request found", http.StatusOK)
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.CreateRequest(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "maintenance request created", http.StatusCreated)
}

func (c *RequestController) UpdateRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.UpdateRequest(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "maintenance request updated", http.StatusOK)
}

func (c *RequestController) UpdateRequestStatus(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateRequestStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.UpdateRequestStatus(reqCtx, id, payload.Status)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "status updated", http.StatusOK)
}

func parseRequestFilter(ctx echo.Context) (dto.RequestListFilter, error) {
	var filter dto.RequestListFilter

	if raw := ctx.QueryParam("requesterId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, apperrors.NewInvalidInputError("invalid requesterId %q", raw)
		}
		filter.RequesterID = id
	}
	if raw := ctx.QueryParam("equipmentId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, apperrors.NewInvalidInputError("invalid equipmentId %q", raw)
		}
		filter.EquipmentID = id
	}
	return filter, nil
}
